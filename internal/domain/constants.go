package domain

// Default slot generation values
const (
	DefaultGranularityMinutes = 15
	DefaultBufferMinutes      = 0
	DefaultDurationMinutes    = 60
)

// Business validation constants
const (
	MinGranularityMinutes = 5
	MaxGranularityMinutes = 240
	MinDurationMinutes    = 5
	MaxDurationMinutes    = 480 // 8 hours
	MaxNotesLength        = 500

	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists booking statuses that do not occupy a time window.
// Used when filtering bookings for conflict checks.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
	StatusCompleted,
}

// ConflictingStatuses lists booking statuses that occupy a time window.
// No two bookings in these statuses may have overlapping buffered windows
// on the same resource.
var ConflictingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}
