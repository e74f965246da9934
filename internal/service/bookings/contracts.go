package bookings

import (
	"context"

	"github.com/reservly/booking-engine/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// AuditRecorder интерфейс журнала операций
type AuditRecorder interface {
	Record(ctx context.Context, record *domain.OperationAuditRecord)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
