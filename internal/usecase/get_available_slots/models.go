package get_available_slots

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	TenantID   int64     // ID тенанта
	ResourceID int64     // ID ресурса
	Date       time.Time // Дата (без времени)

	// Длительность услуги в минутах; 0 = дефолтная
	DurationMinutes int

	// Шаг сетки слотов в минутах; 0 = дефолтный
	GranularityMinutes int
}

// SlotView один слот в ответе
type SlotView struct {
	StartTime       types.TimeString  // Время начала слота
	DurationMinutes int               // Длительность в минутах
	Status          domain.SlotStatus // available / booked / blocked
}

// Response модель ответа со слотами ресурса на день
type Response struct {
	ResourceID int64
	Date       time.Time
	Slots      []SlotView

	// WorksThisDay false, если у ресурса нет рабочего окна на дату
	WorksThisDay bool
}
