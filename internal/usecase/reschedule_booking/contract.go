package reschedule_booking

import (
	"context"
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/internal/service/constraints"
	"github.com/reservly/booking-engine/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByResourceWithFilter(ctx context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error)
	Reschedule(ctx context.Context, id int64, date time.Time, startTime types.TimeString, durationMinutes int) error
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookableResource, error)
}

// ScheduleService интерфейс сервиса расписаний
type ScheduleService interface {
	WorkingWindow(ctx context.Context, resource *domain.BookableResource, date time.Time) (*domain.WorkingWindow, error)
}

// ConstraintValidator интерфейс валидатора правил
type ConstraintValidator interface {
	Validate(ctx context.Context, industry string, op *constraints.Operation) (*domain.ValidationResult, error)
}

// AuditRecorder интерфейс журнала операций
type AuditRecorder interface {
	Record(ctx context.Context, record *domain.OperationAuditRecord)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
