package bookings

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrForbidden         = errors.New("booking belongs to another tenant")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrInternal          = errors.New("internal bookings error")
)
