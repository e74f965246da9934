package constraints

import (
	"errors"
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
)

var (
	ErrInternal = errors.New("internal constraints error")

	errNoTarget = errors.New("operation has no target booking")
)

// ValidationFailedError несется юзкейсами наружу, когда хотя бы одно
// обязательное правило не прошло. Хендлеры разворачивают его через
// errors.As и отдают результат клиенту как 422
type ValidationFailedError struct {
	Result *domain.ValidationResult
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %d violation(s), %d warning(s)",
		len(e.Result.Violations), len(e.Result.Warnings))
}

// NewValidationFailedError создает ошибку валидации из результата
func NewValidationFailedError(result *domain.ValidationResult) *ValidationFailedError {
	return &ValidationFailedError{Result: result}
}
