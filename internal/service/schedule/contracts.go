package schedule

import (
	"context"
	"time"

	"github.com/reservly/booking-engine/internal/domain"
)

// ShiftRepository интерфейс репозитория сменных назначений
type ShiftRepository interface {
	GetByResourceAndDate(ctx context.Context, resourceID int64, date time.Time) (*domain.ShiftAssignment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
