package domain

import "github.com/reservly/booking-engine/pkg/types"

// SlotStatus represents the availability of a generated slot
type SlotStatus string

const (
	// SlotAvailable — the window is free for the requested duration
	SlotAvailable SlotStatus = "available"
	// SlotBooked — the window conflicts with an active booking
	SlotBooked SlotStatus = "booked"
	// SlotBlocked — the window intersects a break interval
	SlotBlocked SlotStatus = "blocked"
)

// Slot is a derived, recomputable time window for one resource. Slots are
// not the source of truth for conflicts — the authoritative check is always
// against active bookings.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Status          SlotStatus
}

// IsAvailable returns true if the slot can be booked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// RankedResource is a matcher result: an eligible resource with its
// deterministic weighted score
type RankedResource struct {
	Resource *BookableResource
	Score    float64
	// Preferred marks the caller-supplied preferred resource when it
	// passed eligibility and was promoted to the head of the list
	Preferred bool
}

// ScoreWeights is the per-request-type weight configuration of the matcher
type ScoreWeights struct {
	Rating     float64
	Experience float64
	// Cost weighs the inverse commission signal: lower commission scores higher
	Cost float64
}

// DefaultScoreWeights fixed matcher weights per request type
var DefaultScoreWeights = map[string]ScoreWeights{
	"restaurant": {Rating: 0.6, Experience: 0.2, Cost: 0.2},
	"salon":      {Rating: 0.5, Experience: 0.3, Cost: 0.2},
	"retail":     {Rating: 0.4, Experience: 0.4, Cost: 0.2},
	"event":      {Rating: 0.5, Experience: 0.2, Cost: 0.3},
}

// FallbackScoreWeights is used for request types without a fixed entry
var FallbackScoreWeights = ScoreWeights{Rating: 0.5, Experience: 0.3, Cost: 0.2}

// WeightsForRequestType returns the fixed weights for the request type,
// falling back to the neutral profile for unknown types
func WeightsForRequestType(requestType string) ScoreWeights {
	if w, ok := DefaultScoreWeights[requestType]; ok {
		return w
	}
	return FallbackScoreWeights
}
