package get_available_slots

import (
	"context"
	"time"

	"github.com/reservly/booking-engine/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookableResource, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByResourceWithFilter(ctx context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleService интерфейс сервиса расписаний
type ScheduleService interface {
	WorkingWindow(ctx context.Context, resource *domain.BookableResource, date time.Time) (*domain.WorkingWindow, error)
}

// SlotGenerator интерфейс генератора слотов
type SlotGenerator interface {
	Generate(window *domain.WorkingWindow, durationMinutes, granularityMinutes, bufferMinutes int, bookings []*domain.Booking) ([]domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
