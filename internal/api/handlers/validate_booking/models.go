package validate_booking

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	validateBooking "github.com/reservly/booking-engine/internal/usecase/validate_booking"
	"github.com/reservly/booking-engine/pkg/types"
)

// ValidateBookingRequest HTTP request model
type ValidateBookingRequest struct {
	RequestType         string   `json:"requestType"`
	Date                string   `json:"date"`
	StartTime           string   `json:"startTime"`
	DurationMinutes     int      `json:"durationMinutes"`
	PartySize           int      `json:"partySize,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	PreferredResourceID *int64   `json:"preferredResourceId,omitempty"`
}

// ValidateBookingResponse HTTP response model: результат проверки
// целиком плюс ресурс, который был бы назначен
type ValidateBookingResponse struct {
	*domain.ValidationResult
	MatchedResourceID *int64 `json:"matchedResourceId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateBookingRequest) ToUseCaseRequest(tenantID int64, actor domain.ActorRole) (*validateBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &validateBooking.Request{
		TenantID:            tenantID,
		RequestType:         r.RequestType,
		Date:                date,
		StartTime:           startTime,
		DurationMinutes:     r.DurationMinutes,
		PartySize:           r.PartySize,
		Tags:                r.Tags,
		PreferredResourceID: r.PreferredResourceID,
		ActorRole:           actor,
	}, nil
}
