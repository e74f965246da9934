package slots

import "errors"

var (
	// ErrInvalidParams возвращается при некорректных параметрах генерации
	ErrInvalidParams = errors.New("slots: invalid generation parameters")
)
