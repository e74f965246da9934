package get_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("get_booking: booking not found")

	// ErrForbidden возвращается, когда бронирование принадлежит другому тенанту
	ErrForbidden = errors.New("get_booking: booking belongs to another tenant")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_booking: internal error")
)
