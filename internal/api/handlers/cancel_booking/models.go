package cancel_booking

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	cancelBooking "github.com/reservly/booking-engine/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID          int64              `json:"id"`
	Status      string             `json:"status"`
	CancelledAt *string            `json:"cancelledAt,omitempty"`
	Warnings    []domain.Violation `json:"warnings,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	out := &CancelBookingResponse{
		ID:       resp.ID,
		Status:   resp.Status,
		Warnings: resp.Warnings,
	}
	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledAt
	}
	return out
}
