package cancel_booking

import (
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason cannot exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	return nil
}
