package constraints

import (
	"fmt"
	"time"

	"github.com/reservly/booking-engine/internal/domain"
)

// Правила семейства timing: рабочие часы и горизонты бронирования

// Имена параметров правил timing
const (
	paramMinNoticeMinutes = "minNoticeMinutes"
	paramMaxAdvanceDays   = "maxAdvanceDays"
)

func evalOutsideOperatingHours(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	if op.Window == nil {
		return []domain.Violation{withAction(
			violation(rule, domain.ViolationValidation,
				fmt.Sprintf("the resource does not work on %s", op.Date.Format(domain.DateFormat))),
			domain.ActionSelectDifferentTime,
		)}
	}
	startMin, endMin, err := op.windowMinutes()
	if err != nil {
		return []domain.Violation{configurationGap(rule, "requested start time is malformed, operating hours check skipped")}
	}

	open, errOpen := op.Window.Start.Minutes()
	closing, errClose := op.Window.End.Minutes()
	if errOpen != nil || errClose != nil {
		return []domain.Violation{configurationGap(rule, "working window boundaries are malformed, operating hours check skipped")}
	}
	if startMin < open || startMin >= closing {
		return []domain.Violation{withAction(
			violation(rule, domain.ViolationValidation,
				fmt.Sprintf("start time %s is outside operating hours (%s - %s)", op.StartTime, op.Window.Start, op.Window.End)),
			domain.ActionSelectDifferentTime,
		)}
	}
	if op.Window.IntersectsBreak(startMin, endMin) {
		return []domain.Violation{withAction(
			violation(rule, domain.ViolationValidation,
				fmt.Sprintf("the %s slot overlaps a scheduled break", op.StartTime)),
			domain.ActionSelectDifferentTime,
		)}
	}
	return nil
}

func evalExtendsPastClosing(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	if op.Window == nil {
		// Полное отсутствие окна репортит outside_operating_hours
		return nil
	}
	startMin, endMin, err := op.windowMinutes()
	if err != nil {
		return []domain.Violation{configurationGap(rule, "requested start time is malformed, closing time check skipped")}
	}
	open, errOpen := op.Window.Start.Minutes()
	closing, errClose := op.Window.End.Minutes()
	if errOpen != nil || errClose != nil {
		return []domain.Violation{configurationGap(rule, "working window boundaries are malformed, closing time check skipped")}
	}
	// Старт внутри окна, но конец за закрытием
	if startMin >= open && startMin < closing && endMin > closing {
		return []domain.Violation{withAction(
			violation(rule, domain.ViolationValidation,
				fmt.Sprintf("a %d-minute booking starting at %s would extend past closing time %s",
					op.DurationMinutes, op.StartTime, op.Window.End)),
			domain.ActionSelectDifferentTime,
		)}
	}
	return nil
}

func evalMinAdvanceNotice(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	minNotice, ok := rule.IntParam(paramMinNoticeMinutes)
	if !ok {
		return []domain.Violation{configurationGap(rule,
			fmt.Sprintf("rule parameter %q is not configured, advance notice check skipped", paramMinNoticeMinutes))}
	}
	startsAt, err := op.startsAt()
	if err != nil {
		return []domain.Violation{configurationGap(rule, "requested start time is malformed, advance notice check skipped")}
	}
	if startsAt.Sub(op.Now) >= time.Duration(minNotice)*time.Minute {
		return nil
	}
	return []domain.Violation{withAction(
		violation(rule, domain.ViolationValidation,
			fmt.Sprintf("bookings must be placed at least %d minutes in advance", minNotice)),
		domain.ActionSelectDifferentTime,
	)}
}

func evalMaxAdvanceWindow(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	maxDays, ok := rule.IntParam(paramMaxAdvanceDays)
	if !ok {
		return []domain.Violation{configurationGap(rule,
			fmt.Sprintf("rule parameter %q is not configured, advance window check skipped", paramMaxAdvanceDays))}
	}
	startsAt, err := op.startsAt()
	if err != nil {
		return []domain.Violation{configurationGap(rule, "requested start time is malformed, advance window check skipped")}
	}
	if startsAt.Sub(op.Now) <= time.Duration(maxDays)*24*time.Hour {
		return nil
	}
	return []domain.Violation{withAction(
		violation(rule, domain.ViolationValidation,
			fmt.Sprintf("bookings can be placed at most %d days in advance", maxDays)),
		domain.ActionSelectDifferentTime,
	)}
}
