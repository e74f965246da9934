package mark_no_show

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("mark_no_show: booking not found")

	// ErrForbidden возвращается, когда бронирование принадлежит другому тенанту
	ErrForbidden = errors.New("mark_no_show: booking belongs to another tenant")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("mark_no_show: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("mark_no_show: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("mark_no_show: internal error")
)
