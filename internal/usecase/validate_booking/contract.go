package validate_booking

import (
	"context"
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/internal/service/constraints"
	"github.com/reservly/booking-engine/internal/service/matcher"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByResourceWithFilter(ctx context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error)
}

// MatcherService интерфейс сервиса подбора ресурсов
type MatcherService interface {
	Match(ctx context.Context, req *matcher.Request) (*matcher.Result, error)
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
