package matcher

import (
	"context"
	"time"

	"github.com/reservly/booking-engine/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	ListByTenantAndType(ctx context.Context, tenantID int64, resourceType string) ([]*domain.BookableResource, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByResourceWithFilter(ctx context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleService разрешает рабочее окно ресурса на дату
type ScheduleService interface {
	WorkingWindow(ctx context.Context, resource *domain.BookableResource, date time.Time) (*domain.WorkingWindow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
