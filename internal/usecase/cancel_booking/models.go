package cancel_booking

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
)

// Request модель запроса на отмену бронирования
type Request struct {
	TenantID  int64            // ID тенанта
	BookingID int64            // ID бронирования
	Reason    string           // Причина отмены
	ActorRole domain.ActorRole // Кто отменяет
}

// Response модель ответа с отмененным бронированием
type Response struct {
	ID          int64      // ID бронирования
	Status      string     // Новый статус (cancelled)
	CancelledAt *time.Time // Время отмены

	// Необязательные предупреждения: например, поздняя отмена с
	// аннотацией финансовых последствий
	Warnings []domain.Violation
}
