package validate_booking

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/types"
)

// Request модель запроса на предварительную проверку бронирования.
// Ничего не пишет: используется клиентами для показа нарушений до
// фактической попытки создать бронирование
type Request struct {
	TenantID        int64            // ID тенанта
	RequestType     string           // Вертикаль: restaurant, salon, retail, event
	Date            time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	PartySize       int              // Размер группы
	Tags            []string         // Требуемые специализации (опционально)

	PreferredResourceID *int64 // Предпочитаемый ресурс (опционально)

	ActorRole domain.ActorRole // Кто проверяет запрос
}

// Response модель ответа: полный результат проверки и ресурс, который
// был бы назначен при создании
type Response struct {
	Result *domain.ValidationResult

	// MatchedResourceID ресурс, прошедший подбор; nil, если подходящих нет
	MatchedResourceID *int64
}
