package schedule

import "errors"

var (
	// ErrInvalidSchedule возвращается при нечитаемом расписании ресурса
	ErrInvalidSchedule = errors.New("schedule: invalid schedule configuration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
