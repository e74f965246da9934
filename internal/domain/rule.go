package domain

import "time"

// RuleFamily groups constraint rules by the kind of check they perform
type RuleFamily string

const (
	FamilyAvailability RuleFamily = "availability"
	FamilyTiming       RuleFamily = "timing"
	FamilyCapacity     RuleFamily = "capacity"
	FamilyPolicy       RuleFamily = "policy"
)

// Well-known constraint rule names. The validator dispatches evaluation
// by name; tenant overrides reference the same names.
const (
	RuleResourceActive       = "resource_active"
	RuleSlotConflict         = "slot_conflict"
	RuleNoResourceAvailable  = "no_resource_available"
	RulePreferredResource    = "preferred_resource_available"
	RuleOutsideOperatingHrs  = "outside_operating_hours"
	RuleExtendsPastClosing   = "extends_past_closing"
	RuleMinAdvanceNotice     = "min_advance_notice"
	RuleMaxAdvanceWindow     = "max_advance_window"
	RuleTableCapacity        = "table_capacity"
	RulePartySizeCeiling     = "party_size_ceiling"
	RuleCancellationNotice   = "cancellation_notice"
	RuleBookingCancellable   = "booking_cancellable"
	RuleBookingReschedulable = "booking_reschedulable"
)

// ConstraintRule is an industry-scoped rule definition. Parameters are
// free-form and interpreted by the rule's evaluator; tenant-level override
// rows may replace params, priority, the mandatory flag or enablement.
type ConstraintRule struct {
	ID        int64
	Industry  string
	Name      string
	Family    RuleFamily
	Params    map[string]interface{}
	Mandatory bool
	Priority  int // lower = more severe, surfaced first
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IntParam reads an integer parameter; JSON numbers decode as float64
func (r *ConstraintRule) IntParam(key string) (int, bool) {
	v, ok := r.Params[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

// FloatParam reads a float parameter
func (r *ConstraintRule) FloatParam(key string) (float64, bool) {
	v, ok := r.Params[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// StringParam reads a string parameter
func (r *ConstraintRule) StringParam(key string) (string, bool) {
	v, ok := r.Params[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// TenantRuleOverride is a tenant-level override of an industry rule.
// Nil fields keep the industry default.
type TenantRuleOverride struct {
	ID        int64
	TenantID  int64
	RuleName  string
	Params    map[string]interface{} // nil = keep default params
	Mandatory *bool
	Priority  *int
	Enabled   *bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RuleCatalog is the resolved rule set for one tenant: industry defaults
// with tenant overrides already applied. It is passed into the validator
// by value at call time — there is no process-wide mutable rule state.
type RuleCatalog struct {
	Industry string
	TenantID int64
	Rules    []ConstraintRule
}

// Rule returns the rule with the given name, or nil
func (c *RuleCatalog) Rule(name string) *ConstraintRule {
	for i := range c.Rules {
		if c.Rules[i].Name == name {
			return &c.Rules[i]
		}
	}
	return nil
}

// EnabledRules returns the enabled rules of the catalog
func (c *RuleCatalog) EnabledRules() []ConstraintRule {
	out := make([]ConstraintRule, 0, len(c.Rules))
	for _, r := range c.Rules {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out
}

// ApplyOverrides merges tenant overrides into industry defaults and
// returns the resolved catalog. Overrides that reference unknown rule
// names are ignored.
func ApplyOverrides(industry string, tenantID int64, defaults []ConstraintRule, overrides []TenantRuleOverride) RuleCatalog {
	byName := make(map[string]*TenantRuleOverride, len(overrides))
	for i := range overrides {
		byName[overrides[i].RuleName] = &overrides[i]
	}

	rules := make([]ConstraintRule, 0, len(defaults))
	for _, rule := range defaults {
		if o, ok := byName[rule.Name]; ok {
			if o.Params != nil {
				rule.Params = o.Params
			}
			if o.Mandatory != nil {
				rule.Mandatory = *o.Mandatory
			}
			if o.Priority != nil {
				rule.Priority = *o.Priority
			}
			if o.Enabled != nil {
				rule.Enabled = *o.Enabled
			}
		}
		rules = append(rules, rule)
	}

	return RuleCatalog{Industry: industry, TenantID: tenantID, Rules: rules}
}
