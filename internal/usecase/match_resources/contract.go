package match_resources

import (
	"context"

	"github.com/reservly/booking-engine/internal/service/matcher"
)

// MatcherService интерфейс сервиса подбора ресурсов
type MatcherService interface {
	Match(ctx context.Context, req *matcher.Request) (*matcher.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
