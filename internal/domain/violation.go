package domain

import "sort"

// ViolationType classifies a constraint failure per the error taxonomy:
// validation failures are fixable input problems, conflicts mean a
// concurrent write won the slot, configuration gaps are degraded checks.
type ViolationType string

const (
	ViolationValidation    ViolationType = "validation"
	ViolationConflict      ViolationType = "conflict"
	ViolationConfiguration ViolationType = "configuration_gap"
)

// Suggested actions attached to violations
const (
	ActionSelectDifferentTime = "select a different time"
	ActionReducePartySize     = "reduce party size"
	ActionContactBusiness     = "contact the business directly"
	ActionChooseOtherResource = "choose a different resource"
)

// Violation is a single constraint failure. Mandatory violations block the
// operation; non-mandatory ones are surfaced as warnings.
type Violation struct {
	ConstraintName  string        `json:"constraintName"`
	ViolationType   ViolationType `json:"violationType"`
	Message         string        `json:"message"`
	Priority        int           `json:"priority"`
	Mandatory       bool          `json:"mandatory"`
	SuggestedAction *string       `json:"suggestedAction,omitempty"`
	FinancialImpact *string       `json:"financialImpact,omitempty"`
}

// ValidationResult is the sole structured rejection surface of the engine.
// The operation is permitted iff there are zero mandatory violations; any
// number of warnings may be present without blocking.
type ValidationResult struct {
	IsValid            bool        `json:"isValid"`
	Violations         []Violation `json:"violations"`
	Warnings           []Violation `json:"warnings"`
	ConstraintsChecked int         `json:"constraintsChecked"`
}

// NewValidationResult creates an empty, passing result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid:    true,
		Violations: []Violation{},
		Warnings:   []Violation{},
	}
}

// Add records a constraint failure, routing it to violations or warnings
// by its mandatory flag
func (r *ValidationResult) Add(v Violation) {
	if v.Mandatory {
		r.Violations = append(r.Violations, v)
		r.IsValid = false
		return
	}
	r.Warnings = append(r.Warnings, v)
}

// Merge folds another result into this one
func (r *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.ConstraintsChecked += other.ConstraintsChecked
	if !other.IsValid {
		r.IsValid = false
	}
}

// Sort orders violations and warnings by priority ascending (most severe
// first). Evaluation order is not significant, reporting order is.
func (r *ValidationResult) Sort() {
	sort.SliceStable(r.Violations, func(i, j int) bool {
		return r.Violations[i].Priority < r.Violations[j].Priority
	})
	sort.SliceStable(r.Warnings, func(i, j int) bool {
		return r.Warnings[i].Priority < r.Warnings[j].Priority
	})
}
