package domain

import (
	"time"

	"github.com/reservly/booking-engine/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// Booking represents a persistent reservation of a resource's time window.
// Bookings are never hard-deleted; cancellation is a status change so that
// history and audit records stay intact.
type Booking struct {
	ID         int64
	Reference  string // external confirmation code (uuid)
	TenantID   int64
	ResourceID int64

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	BufferMinutes   int // idle time enforced before/after, fixed at creation

	Status    BookingStatus
	PartySize int

	CustomerName  string
	CustomerPhone string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesWindow returns true if the booking counts for conflict checks
func (b *Booking) OccupiesWindow() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusInProgress
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to a new window
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeMarkedNoShow returns true if the booking can be marked as a no-show
func (b *Booking) CanBeMarkedNoShow() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can be completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusInProgress || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsTerminal returns true if no further transitions are possible
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusNoShow
}

// BufferedStartMinutes returns the start of the buffer-expanded window in
// minutes from midnight, clamped at the start of the day.
func (b *Booking) BufferedStartMinutes() (int, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return 0, err
	}
	start -= b.BufferMinutes
	if start < 0 {
		start = 0
	}
	return start, nil
}

// BufferedEndMinutes returns the end of the buffer-expanded window in
// minutes from midnight, clamped at the end of the day.
func (b *Booking) BufferedEndMinutes() (int, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return 0, err
	}
	end := start + b.DurationMinutes + b.BufferMinutes
	if end > 24*60 {
		end = 24 * 60
	}
	return end, nil
}

// ResourceBookingsFilter фильтр для получения бронирований ресурса
type ResourceBookingsFilter struct {
	ResourceID      int64          // Обязательный параметр
	TenantID        *int64         // Дополнительная проверка принадлежности тенанту
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования
	ExcludeID       *int64         // Исключить бронирование (для reschedule)
}
