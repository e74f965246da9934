package complete_booking

import (
	"context"

	"github.com/reservly/booking-engine/internal/domain"
)

// BookingService интерфейс сервиса жизненного цикла
type BookingService interface {
	Complete(ctx context.Context, bookingID, tenantID int64, actor domain.ActorRole) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
