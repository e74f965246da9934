package reschedule_booking

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
	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}
	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime: %v", ErrInvalidInput, err)
	}
	if req.NewDurationMinutes != 0 &&
		(req.NewDurationMinutes < domain.MinDurationMinutes || req.NewDurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: newDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}
