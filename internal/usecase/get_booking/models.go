package get_booking

import (
	"time"

	"github.com/reservly/booking-engine/pkg/types"
)

// Request модель запроса бронирования
type Request struct {
	TenantID  int64 // ID тенанта
	BookingID int64 // ID бронирования
}

// Response модель ответа с бронированием
type Response struct {
	ID              int64            // ID бронирования
	Reference       string           // Внешний код подтверждения
	TenantID        int64            // ID тенанта
	ResourceID      int64            // ID ресурса
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
	PartySize       int              // Размер группы

	CustomerName  string  // Имя клиента
	CustomerPhone string  // Телефон клиента
	Notes         *string // Заметки

	CancellationReason *string    // Причина отмены (если отменено)
	CancelledAt        *time.Time // Время отмены (если отменено)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
