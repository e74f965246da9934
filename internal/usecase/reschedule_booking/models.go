package reschedule_booking

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	TenantID  int64 // ID тенанта
	BookingID int64 // ID бронирования

	NewDate      time.Time        // Новая дата
	NewStartTime types.TimeString // Новое время начала

	// Новая длительность в минутах; 0 = сохранить текущую
	NewDurationMinutes int

	ActorRole domain.ActorRole // Кто переносит
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	ID              int64            // ID бронирования
	BookingDate     time.Time        // Новая дата
	StartTime       types.TimeString // Новое время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус после переноса (pending)

	// Необязательные предупреждения, не блокировавшие перенос
	Warnings []domain.Violation
}
