package matcher

import "errors"

var (
	ErrInvalidInput = errors.New("invalid matcher request")
	ErrInternal     = errors.New("internal matcher error")
)
