package mark_no_show

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservly/booking-engine/internal/service/bookings"
)

// UseCase use case для отметки неявки клиента
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

// Execute выполняет use case отметки неявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MarkNoShow: tenant=%d, booking=%d", req.TenantID, req.BookingID)

	if req.TenantID <= 0 || req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: tenantID and bookingID must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingSvc.MarkNoShow(ctx, req.BookingID, req.TenantID, req.ActorRole)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookings.ErrForbidden):
			return nil, ErrForbidden
		case errors.Is(err, bookings.ErrInvalidTransition):
			uc.logger.Warn("MarkNoShow: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		default:
			uc.logger.Error("MarkNoShow: failed for booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return &Response{
		ID:        booking.ID,
		Status:    string(booking.Status),
		UpdatedAt: booking.UpdatedAt,
	}, nil
}
