package get_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservly/booking-engine/internal/service/bookings"
)

// UseCase use case для чтения бронирования
type UseCase struct {
	bookingSvc BookingService
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingSvc BookingService, logger Logger) *UseCase {
	return &UseCase{
		bookingSvc: bookingSvc,
		logger:     logger,
	}
}

// Execute выполняет use case чтения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.TenantID <= 0 || req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: tenantID and bookingID must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingSvc.GetForTenant(ctx, req.BookingID, req.TenantID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			uc.logger.Warn("GetBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookings.ErrForbidden):
			uc.logger.Warn("GetBooking: booking id=%d is not visible to tenant=%d", req.BookingID, req.TenantID)
			return nil, ErrForbidden
		default:
			uc.logger.Error("GetBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return &Response{
		ID:                 booking.ID,
		Reference:          booking.Reference,
		TenantID:           booking.TenantID,
		ResourceID:         booking.ResourceID,
		BookingDate:        booking.BookingDate,
		StartTime:          booking.StartTime,
		DurationMinutes:    booking.DurationMinutes,
		Status:             string(booking.Status),
		PartySize:          booking.PartySize,
		CustomerName:       booking.CustomerName,
		CustomerPhone:      booking.CustomerPhone,
		Notes:              booking.Notes,
		CancellationReason: booking.CancellationReason,
		CancelledAt:        booking.CancelledAt,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}, nil
}
