package cancel_booking

import (
	"context"
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/internal/service/constraints"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookableResource, error)
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
