package mark_no_show

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
)

// Request модель запроса на отметку неявки
type Request struct {
	TenantID  int64            // ID тенанта
	BookingID int64            // ID бронирования
	ActorRole domain.ActorRole // Кто отмечает неявку
}

// Response модель ответа после отметки неявки
type Response struct {
	ID        int64     // ID бронирования
	Status    string    // Новый статус (no_show)
	UpdatedAt time.Time // Время обновления
}
