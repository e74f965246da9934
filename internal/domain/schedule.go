package domain

import (
	"time"

	"github.com/reservly/booking-engine/pkg/types"
)

// BreakInterval is a pause inside a working window, [Start, End)
type BreakInterval struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// ShiftAssignment is a resource's concrete working instance for one date,
// created from a shift template by scheduling staff. When present it
// supersedes the resource's generic weekday window for that date.
type ShiftAssignment struct {
	ID         int64
	ResourceID int64
	ShiftDate  time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Breaks     []BreakInterval
	CreatedAt  time.Time
}

// WorkingWindow is the resolved working interval of a resource for one date.
// Absence (nil) means the resource does not work that date.
type WorkingWindow struct {
	Start  types.TimeString
	End    types.TimeString
	Breaks []BreakInterval
}

// Covers returns true if [startMin, endMin) lies fully inside the window.
// Boundaries are inclusive: a booking ending exactly at closing fits.
func (w *WorkingWindow) Covers(startMin, endMin int) bool {
	open, err := w.Start.Minutes()
	if err != nil {
		return false
	}
	close, err := w.End.Minutes()
	if err != nil {
		return false
	}
	return startMin >= open && endMin <= close
}

// IntersectsBreak returns true if [startMin, endMin) overlaps any break.
// Touching boundaries do not count as overlap.
func (w *WorkingWindow) IntersectsBreak(startMin, endMin int) bool {
	for _, br := range w.Breaks {
		bs, err := br.Start.Minutes()
		if err != nil {
			continue
		}
		be, err := br.End.Minutes()
		if err != nil {
			continue
		}
		if startMin < be && endMin > bs {
			return true
		}
	}
	return false
}

// IsEmpty returns true for a zero-length or inverted window
func (w *WorkingWindow) IsEmpty() bool {
	open, err := w.Start.Minutes()
	if err != nil {
		return true
	}
	close, err := w.End.Minutes()
	if err != nil {
		return true
	}
	return close <= open
}
