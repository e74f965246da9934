package constraints

import (
	"fmt"
	"time"

	"github.com/reservly/booking-engine/internal/domain"
)

// Правила семейства policy: жизненный цикл существующих бронирований

// Имена параметров правил policy
const (
	paramNoticeMinutes  = "noticeMinutes"
	paramLateFeePercent = "lateFeePercent"
)

func evalCancellationNotice(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	if op.Target == nil {
		return []domain.Violation{configurationGap(rule, "booking snapshot is missing, cancellation notice check skipped")}
	}
	noticeMinutes, ok := rule.IntParam(paramNoticeMinutes)
	if !ok {
		return []domain.Violation{configurationGap(rule,
			fmt.Sprintf("rule parameter %q is not configured, cancellation notice check skipped", paramNoticeMinutes))}
	}
	startsAt, err := op.targetStartsAt()
	if err != nil {
		return []domain.Violation{configurationGap(rule, "booking start time is malformed, cancellation notice check skipped")}
	}
	if startsAt.Sub(op.Now) >= time.Duration(noticeMinutes)*time.Minute {
		return nil
	}

	v := violation(rule, domain.ViolationValidation,
		fmt.Sprintf("cancellation within %d minutes of the booking start", noticeMinutes))
	// Штраф за позднюю отмену аннотируется, решение об удержании
	// принимает биллинг, а не движок
	if feePercent, ok := rule.FloatParam(paramLateFeePercent); ok && feePercent > 0 {
		impact := fmt.Sprintf("late cancellation fee: %.0f%% of the booking value", feePercent)
		v.FinancialImpact = &impact
	}
	return []domain.Violation{v}
}

func evalBookingCancellable(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	if op.Target == nil {
		return []domain.Violation{configurationGap(rule, "booking snapshot is missing, cancellability check skipped")}
	}
	if op.Target.CanBeCancelled() {
		return nil
	}
	msg := fmt.Sprintf("a booking in status %q cannot be cancelled", op.Target.Status)
	if op.Target.IsCancelled() {
		msg = "the booking is already cancelled"
	}
	return []domain.Violation{violation(rule, domain.ViolationValidation, msg)}
}

func evalBookingReschedulable(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	if op.Target == nil {
		return []domain.Violation{configurationGap(rule, "booking snapshot is missing, reschedulability check skipped")}
	}
	if op.Target.CanBeRescheduled() {
		return nil
	}
	msg := fmt.Sprintf("a booking in status %q cannot be rescheduled", op.Target.Status)
	if op.Target.IsCancelled() {
		msg = "a cancelled booking cannot be rescheduled"
	}
	return []domain.Violation{violation(rule, domain.ViolationValidation, msg)}
}
