package create_booking

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/types"
)

// Request модель запроса на создание бронирования. Запрос транзиентен:
// он либо отклоняется с ValidationResult, либо становится бронированием
type Request struct {
	TenantID        int64            // ID тенанта
	RequestType     string           // Вертикаль: restaurant, salon, retail, event
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала (например, "19:00")
	DurationMinutes int              // Длительность в минутах
	PartySize       int              // Размер группы (0 для услуг один-на-один)
	Tags            []string         // Требуемые специализации (опционально)

	PreferredResourceID *int64 // Предпочитаемый ресурс (опционально)

	CustomerName  string  // Имя клиента
	CustomerPhone string  // Телефон клиента
	Notes         *string // Дополнительные заметки (опционально)

	ActorRole domain.ActorRole // Кто создает бронирование
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	Reference       string           // Внешний код подтверждения
	TenantID        int64            // ID тенанта
	ResourceID      int64            // ID назначенного ресурса
	ResourceName    string           // Название ресурса
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
	PartySize       int              // Размер группы

	// Необязательные предупреждения, не блокировавшие создание
	Warnings []domain.Violation

	CreatedAt time.Time // Время создания
}
