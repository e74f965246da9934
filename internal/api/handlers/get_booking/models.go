package get_booking

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	getBooking "github.com/reservly/booking-engine/internal/usecase/get_booking"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	Reference          string  `json:"reference"`
	TenantID           int64   `json:"tenantId"`
	ResourceID         int64   `json:"resourceId"`
	BookingDate        string  `json:"bookingDate"`
	StartTime          string  `json:"startTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	PartySize          int     `json:"partySize,omitempty"`
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:                 resp.ID,
		Reference:          resp.Reference,
		TenantID:           resp.TenantID,
		ResourceID:         resp.ResourceID,
		BookingDate:        resp.BookingDate.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		DurationMinutes:    resp.DurationMinutes,
		Status:             resp.Status,
		PartySize:          resp.PartySize,
		CustomerName:       resp.CustomerName,
		CustomerPhone:      resp.CustomerPhone,
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledAt
	}
	return out
}
