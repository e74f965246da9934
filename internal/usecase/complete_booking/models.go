package complete_booking

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
)

// Request модель запроса на завершение бронирования
type Request struct {
	TenantID  int64            // ID тенанта
	BookingID int64            // ID бронирования
	ActorRole domain.ActorRole // Кто завершает
}

// Response модель ответа после завершения
type Response struct {
	ID        int64     // ID бронирования
	Status    string    // Новый статус (completed)
	UpdatedAt time.Time // Время обновления
}
