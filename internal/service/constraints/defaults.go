package constraints

import "github.com/reservly/booking-engine/internal/domain"

// DefaultCatalog — встроенная страховочная сетка для отраслей, у которых
// в базе еще нет правил. Набор консервативен: блокируют только проверки
// занятости, рабочих часов и вместимости; политики отмены деградируют до
// предупреждений
func DefaultCatalog(industry string, tenantID int64) domain.RuleCatalog {
	return domain.RuleCatalog{
		Industry: industry,
		TenantID: tenantID,
		Rules: []domain.ConstraintRule{
			{Name: domain.RuleResourceActive, Family: domain.FamilyAvailability, Mandatory: true, Priority: 10, Enabled: true},
			{Name: domain.RuleNoResourceAvailable, Family: domain.FamilyAvailability, Mandatory: true, Priority: 11, Enabled: true},
			{Name: domain.RuleSlotConflict, Family: domain.FamilyAvailability, Mandatory: true, Priority: 12, Enabled: true},
			{Name: domain.RuleOutsideOperatingHrs, Family: domain.FamilyTiming, Mandatory: true, Priority: 20, Enabled: true},
			{Name: domain.RuleExtendsPastClosing, Family: domain.FamilyTiming, Mandatory: true, Priority: 21, Enabled: true},
			{Name: domain.RuleMinAdvanceNotice, Family: domain.FamilyTiming, Mandatory: true, Priority: 30, Enabled: true,
				Params: map[string]interface{}{paramMinNoticeMinutes: 30}},
			{Name: domain.RuleMaxAdvanceWindow, Family: domain.FamilyTiming, Mandatory: true, Priority: 31, Enabled: true,
				Params: map[string]interface{}{paramMaxAdvanceDays: 90}},
			{Name: domain.RuleTableCapacity, Family: domain.FamilyCapacity, Mandatory: true, Priority: 40, Enabled: true},
			{Name: domain.RuleBookingCancellable, Family: domain.FamilyPolicy, Mandatory: true, Priority: 50, Enabled: true},
			{Name: domain.RuleBookingReschedulable, Family: domain.FamilyPolicy, Mandatory: true, Priority: 51, Enabled: true},
			{Name: domain.RuleCancellationNotice, Family: domain.FamilyPolicy, Mandatory: false, Priority: 60, Enabled: true,
				Params: map[string]interface{}{paramNoticeMinutes: 1440, paramLateFeePercent: 50}},
			{Name: domain.RulePreferredResource, Family: domain.FamilyAvailability, Mandatory: false, Priority: 90, Enabled: true},
		},
	}
}
