package get_available_slots

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("get_available_slots: resource not found")

	// ErrForbidden возвращается, когда ресурс принадлежит другому тенанту
	ErrForbidden = errors.New("get_available_slots: resource belongs to another tenant")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
