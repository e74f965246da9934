package constraints

import (
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
)

// Правила семейства capacity: вместимость ресурса и лимиты группы

// Имена параметров правил capacity
const paramMaxPartySize = "maxPartySize"

func evalTableCapacity(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	if op.Resource == nil {
		return []domain.Violation{configurationGap(rule, "resource snapshot is missing, capacity check skipped")}
	}
	if op.PartySize <= 0 {
		// Вертикали без понятия группы (услуги один-на-один) передают 0
		return nil
	}
	if op.PartySize > op.Resource.MaxCapacity {
		return []domain.Violation{withAction(
			violation(rule, domain.ViolationValidation,
				fmt.Sprintf("party of %d exceeds the capacity of %q (max %d)",
					op.PartySize, op.Resource.Name, op.Resource.MaxCapacity)),
			domain.ActionReducePartySize,
		)}
	}
	if op.PartySize < op.Resource.MinCapacity {
		return []domain.Violation{withAction(
			violation(rule, domain.ViolationValidation,
				fmt.Sprintf("party of %d is below the minimum of %d for %q",
					op.PartySize, op.Resource.MinCapacity, op.Resource.Name)),
			domain.ActionChooseOtherResource,
		)}
	}
	return nil
}

func evalPartySizeCeiling(rule domain.ConstraintRule, op *Operation) []domain.Violation {
	ceiling, ok := rule.IntParam(paramMaxPartySize)
	if !ok {
		return []domain.Violation{configurationGap(rule,
			fmt.Sprintf("rule parameter %q is not configured, party size check skipped", paramMaxPartySize))}
	}
	if op.PartySize <= ceiling {
		return nil
	}
	return []domain.Violation{withAction(
		violation(rule, domain.ViolationValidation,
			fmt.Sprintf("party of %d exceeds the venue-wide limit of %d", op.PartySize, ceiling)),
		domain.ActionContactBusiness,
	)}
}
