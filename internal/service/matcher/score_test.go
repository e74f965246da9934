package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reservly/booking-engine/internal/domain"
)

func TestScore(t *testing.T) {
	weights := domain.ScoreWeights{Rating: 0.5, Experience: 0.3, Cost: 0.2}

	testCases := []struct {
		name     string
		resource *domain.BookableResource
		expected float64
	}{
		{
			name:     "perfect resource",
			resource: &domain.BookableResource{Rating: 5.0, ExperienceYears: 20, CommissionRate: 0},
			expected: 1.0,
		},
		{
			name:     "zero signals",
			resource: &domain.BookableResource{},
			expected: 0.2, // только инвертированная комиссия
		},
		{
			name:     "mid-range",
			resource: &domain.BookableResource{Rating: 4.0, ExperienceYears: 10, CommissionRate: 0.5},
			expected: 0.5*0.8 + 0.3*0.5 + 0.2*0.5,
		},
		{
			name:     "experience capped at twenty years",
			resource: &domain.BookableResource{ExperienceYears: 35, CommissionRate: 1},
			expected: 0.3,
		},
		{
			name:     "commission above one clamps cost to zero",
			resource: &domain.BookableResource{CommissionRate: 1.5},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Score(tc.resource, weights), 1e-9)
		})
	}
}

func TestWeightsForRequestType(t *testing.T) {
	w := domain.WeightsForRequestType("restaurant")
	assert.Equal(t, 0.6, w.Rating)

	// Неизвестная вертикаль получает нейтральный профиль
	assert.Equal(t, domain.FallbackScoreWeights, domain.WeightsForRequestType("spa"))
}
