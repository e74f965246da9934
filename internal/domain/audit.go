package domain

import "time"

// OperationType is a booking lifecycle operation
type OperationType string

const (
	OpCreate     OperationType = "create"
	OpValidate   OperationType = "validate"
	OpCancel     OperationType = "cancel"
	OpReschedule OperationType = "reschedule"
	OpNoShow     OperationType = "no_show"
	OpComplete   OperationType = "complete"
)

// ActorRole identifies who attempted a lifecycle operation
type ActorRole string

const (
	ActorCustomer ActorRole = "customer"
	ActorStaff    ActorRole = "staff"
	ActorSystem   ActorRole = "system"
)

// OperationAuditRecord is the append-only log entry written for every
// lifecycle operation attempted against a booking, including failed ones.
// Records are never overwritten.
type OperationAuditRecord struct {
	ID        int64
	BookingID *int64 // nil for rejected creations that produced no booking
	TenantID  int64

	Operation OperationType
	ActorRole ActorRole

	Payload            map[string]interface{}
	ConstraintsChecked int
	Violations         []Violation
	Warnings           []Violation

	// Passed reports whether the mandatory gate let the operation through
	Passed bool

	CreatedAt time.Time
}
