package match_resources

import (
	"time"

	"github.com/reservly/booking-engine/pkg/types"
)

// Request модель запроса на подбор ресурса
type Request struct {
	TenantID        int64            // ID тенанта
	RequestType     string           // Вертикаль: restaurant, salon, retail, event
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Tags            []string         // Требуемые специализации (опционально)
	PartySize       int              // Размер группы (0 для услуг один-на-один)

	PreferredResourceID *int64 // Предпочитаемый ресурс (опционально)
}

// RankedResourceView один кандидат в ответе
type RankedResourceView struct {
	ResourceID int64
	Name       string
	Score      float64
	Preferred  bool // true для предпочитаемого ресурса, вставшего первым
}

// Response модель ответа с ранжированными кандидатами
type Response struct {
	Resources []RankedResourceView

	// PreferredUnavailable true, если предпочитаемый ресурс указан,
	// но недоступен в запрошенное время
	PreferredUnavailable bool
}
