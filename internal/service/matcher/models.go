package matcher

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/types"
)

// Request запрос на подбор ресурса
type Request struct {
	TenantID        int64
	RequestType     string // тип запроса: restaurant, salon, retail, event
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Tags            []string // требуемые специализации (опционально)
	PartySize       int

	// PreferredResourceID предпочитаемый ресурс; если он проходит фильтры,
	// возвращается первым, иначе подбор продолжается с предупреждением
	PreferredResourceID *int64
}

// Result результат подбора: ранжированный список подходящих ресурсов
// Пустой список — не ошибка, а сигнал "нет доступных ресурсов"
type Result struct {
	Ranked []domain.RankedResource

	// PreferredUnavailable true, если предпочитаемый ресурс указан,
	// но не прошёл фильтры доступности
	PreferredUnavailable bool
}

// Best возвращает лучший ресурс или nil при пустом результате
func (r *Result) Best() *domain.BookableResource {
	if len(r.Ranked) == 0 {
		return nil
	}
	return r.Ranked[0].Resource
}
