package domain

import "time"

// ResourceStatus represents the availability status of a bookable resource
type ResourceStatus string

const (
	ResourceActive   ResourceStatus = "active"
	ResourceInactive ResourceStatus = "inactive"
	ResourceOnLeave  ResourceStatus = "on_leave"
)

// BookableResource is any schedulable entity (staff member, table, venue)
// owned by a tenant. Resources are never deleted, only deactivated, so
// historical bookings keep a valid reference.
type BookableResource struct {
	ID       int64
	TenantID int64
	Name     string

	// ResourceType maps the resource to a request type (restaurant table,
	// salon chair, personal shopper, event venue)
	ResourceType string
	Tags         []string // capability tags / specializations
	Status       ResourceStatus

	MinCapacity int // minimum party size / quantity
	MaxCapacity int // maximum concurrent occupants (e.g. table seats)

	// MaxDailyAssignments caps how many bookings the resource takes per day
	MaxDailyAssignments int

	BufferMinutes int // mandatory idle time before/after each booking

	// Ranking signals used by the matcher
	Rating          float64 // quality signal, 0..5
	ExperienceYears int
	CommissionRate  float64 // 0..1, lower scores higher

	WorkingHours WeekSchedule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the resource can take new bookings
func (r *BookableResource) IsActive() bool {
	return r.Status == ResourceActive
}

// HasAnyTag returns true if any of the requested capability tags is among
// the resource's declared specializations
func (r *BookableResource) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range r.Tags {
			if want == have {
				return true
			}
		}
	}
	return false
}

// ServesType returns true if the resource's type matches the request type
func (r *BookableResource) ServesType(requestType string) bool {
	return r.ResourceType == requestType
}

// WeekSchedule holds the recurring per-weekday working windows
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday returns the schedule for the given weekday
func (w *WeekSchedule) ForWeekday(day time.Weekday) DaySchedule {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// DaySchedule is one weekday's recurring working window
type DaySchedule struct {
	IsOpen bool            `json:"is_open"`
	Open   *string         `json:"open,omitempty"`  // "10:00"
	Close  *string         `json:"close,omitempty"` // "18:00"
	Breaks []BreakInterval `json:"breaks,omitempty"`
}
