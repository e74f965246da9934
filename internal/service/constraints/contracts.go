package constraints

import (
	"context"

	"github.com/reservly/booking-engine/internal/domain"
)

// CatalogSource отдает резолвленный каталог правил для тенанта
type CatalogSource interface {
	CatalogFor(ctx context.Context, industry string, tenantID int64) (domain.RuleCatalog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
