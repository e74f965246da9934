package constraints

import (
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/internal/service/slots"
)

// Правила семейства availability: существование и занятость ресурса

func evalResourceActive(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	if op.Resource == nil {
		return []domain.Violation{configurationGap(rule, "resource snapshot is missing, activity check skipped")}
	}
	if op.Resource.IsActive() {
		return nil
	}
	return []domain.Violation{withAction(
		violation(rule, domain.ViolationValidation,
			fmt.Sprintf("resource %q is not accepting bookings (status: %s)", op.Resource.Name, op.Resource.Status)),
		domain.ActionChooseOtherResource,
	)}
}

func evalSlotConflict(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	if op.Resource == nil {
		return []domain.Violation{configurationGap(rule, "resource snapshot is missing, conflict check skipped")}
	}
	startMin, endMin, err := op.windowMinutes()
	if err != nil {
		return []domain.Violation{configurationGap(rule, "requested start time is malformed, conflict check skipped")}
	}
	if !slots.ConflictExists(op.ActiveBookings, startMin, endMin, op.Resource.BufferMinutes) {
		return nil
	}
	// Тип conflict, а не validation: окно занял конкурирующий клиент,
	// сами входные данные корректны
	return []domain.Violation{withAction(
		violation(rule, domain.ViolationConflict,
			fmt.Sprintf("the %s slot on %s is already taken", op.StartTime, op.Date.Format(domain.DateFormat))),
		domain.ActionSelectDifferentTime,
	)}
}

func evalNoResourceAvailable(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	if !op.NoResourceAvailable {
		return nil
	}
	return []domain.Violation{withAction(
		violation(rule, domain.ViolationValidation,
			fmt.Sprintf("no suitable resource is available at %s on %s", op.StartTime, op.Date.Format(domain.DateFormat))),
		domain.ActionSelectDifferentTime,
	)}
}

func evalPreferredResource(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	if !op.PreferredUnavailable {
		return nil
	}
	return []domain.Violation{withAction(
		violation(rule, domain.ViolationValidation,
			"the preferred resource is unavailable at the requested time, an alternative was offered"),
		domain.ActionChooseOtherResource,
	)}
}
