package constraints

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
	rulesStorage "github.com/reservly/booking-engine/internal/infra/storage/rules"
)

// evaluator проверяет одно правило против снимка операции. Возвращаемые
// нарушения добавляются в результат; nil означает, что правило прошло
type evaluator func(rule domain.ConstraintRule, op *Operation) []domain.Violation

// ruleEntry связывает evaluator с операциями, к которым правило применимо
type ruleEntry struct {
	eval      evaluator
	appliesTo map[OperationKind]bool
}

func applies(kinds ...OperationKind) map[OperationKind]bool {
	m := make(map[OperationKind]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// registry — диспетчеризация правил по имени. Правило из каталога без
// зарегистрированного evaluator'а считается пробелом конфигурации
var registry = map[string]ruleEntry{
	domain.RuleResourceActive:       {evalResourceActive, applies(OpCreate, OpReschedule)},
	domain.RuleSlotConflict:         {evalSlotConflict, applies(OpCreate, OpReschedule)},
	domain.RuleNoResourceAvailable:  {evalNoResourceAvailable, applies(OpCreate)},
	domain.RulePreferredResource:    {evalPreferredResource, applies(OpCreate)},
	domain.RuleOutsideOperatingHrs:  {evalOutsideOperatingHours, applies(OpCreate, OpReschedule)},
	domain.RuleExtendsPastClosing:   {evalExtendsPastClosing, applies(OpCreate, OpReschedule)},
	domain.RuleMinAdvanceNotice:     {evalMinAdvanceNotice, applies(OpCreate, OpReschedule)},
	domain.RuleMaxAdvanceWindow:     {evalMaxAdvanceWindow, applies(OpCreate, OpReschedule)},
	domain.RuleTableCapacity:        {evalTableCapacity, applies(OpCreate, OpReschedule)},
	domain.RulePartySizeCeiling:     {evalPartySizeCeiling, applies(OpCreate, OpReschedule)},
	domain.RuleCancellationNotice:   {evalCancellationNotice, applies(OpCancel)},
	domain.RuleBookingCancellable:   {evalBookingCancellable, applies(OpCancel)},
	domain.RuleBookingReschedulable: {evalBookingReschedulable, applies(OpReschedule)},
}

// Validator прогоняет операцию через каталог правил тенанта.
//
// Правила проверяются все до единого, без раннего выхода: клиент получает
// полную картину нарушений за один вызов. Порядок проверки не важен,
// результат сортируется по приоритету
type Validator struct {
	catalogSource CatalogSource
	logger        Logger
}

// NewValidator создает новый экземпляр валидатора
func NewValidator(catalogSource CatalogSource, logger Logger) *Validator {
	return &Validator{
		catalogSource: catalogSource,
		logger:        logger,
	}
}

// Validate проверяет операцию и возвращает агрегированный результат.
// Ошибка возвращается только при инфраструктурном сбое; непрошедшие
// правила — это не ошибка, а содержимое результата
func (v *Validator) Validate(ctx context.Context, industry string, op *Operation) (*domain.ValidationResult, error) {
	catalog, err := v.catalogSource.CatalogFor(ctx, industry, op.TenantID)
	if err != nil {
		if !errors.Is(err, rulesStorage.ErrNoRulesForIndustry) {
			v.logger.Error("Validate: failed to load rule catalog for industry=%s tenant=%d: %v",
				industry, op.TenantID, err)
			return nil, fmt.Errorf("%w: failed to load rule catalog: %v", ErrInternal, err)
		}
		// Отрасль без правил в базе работает на встроенном каталоге
		v.logger.Warn("Validate: no rules configured for industry=%s, falling back to built-in defaults", industry)
		catalog = DefaultCatalog(industry, op.TenantID)
	}

	return v.ValidateWithCatalog(catalog, op), nil
}

// ValidateWithCatalog проверяет операцию против уже резолвленного
// каталога. Каталог передается по значению: валидатор не держит
// мутируемого состояния правил
func (v *Validator) ValidateWithCatalog(catalog domain.RuleCatalog, op *Operation) *domain.ValidationResult {
	result := domain.NewValidationResult()

	for _, rule := range catalog.EnabledRules() {
		entry, ok := registry[rule.Name]
		if !ok {
			// Правило сконфигурировано, но движку неизвестно —
			// деградируем до предупреждения, не блокируем
			result.Add(configurationGap(rule, "rule has no registered evaluator"))
			result.ConstraintsChecked++
			continue
		}
		if !entry.appliesTo[op.Kind] {
			continue
		}

		result.ConstraintsChecked++
		for _, violation := range entry.eval(rule, op) {
			result.Add(violation)
		}
	}

	result.Sort()
	return result
}

// violation собирает нарушение из правила: приоритет и обязательность
// всегда берутся из каталога, не из кода evaluator'а
func violation(rule domain.ConstraintRule, vtype domain.ViolationType, message string) domain.Violation {
	return domain.Violation{
		ConstraintName: rule.Name,
		ViolationType:  vtype,
		Message:        message,
		Priority:       rule.Priority,
		Mandatory:      rule.Mandatory,
	}
}

func withAction(v domain.Violation, action string) domain.Violation {
	v.SuggestedAction = &action
	return v
}

// configurationGap — правило не смогло проверить пробел в данных или
// параметрах. Такие нарушения никогда не блокируют операцию
func configurationGap(rule domain.ConstraintRule, message string) domain.Violation {
	action := domain.ActionContactBusiness
	return domain.Violation{
		ConstraintName:  rule.Name,
		ViolationType:   domain.ViolationConfiguration,
		Message:         message,
		Priority:        rule.Priority,
		Mandatory:       false,
		SuggestedAction: &action,
	}
}
