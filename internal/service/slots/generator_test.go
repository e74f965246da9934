package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/types"
)

func window(start, end types.TimeString, breaks ...domain.BreakInterval) *domain.WorkingWindow {
	return &domain.WorkingWindow{Start: start, End: end, Breaks: breaks}
}

func activeBooking(start types.TimeString, durationMin, bufferMin int) *domain.Booking {
	return &domain.Booking{
		BookingDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		DurationMinutes: durationMin,
		BufferMinutes:   bufferMin,
		Status:          domain.StatusConfirmed,
	}
}

func slotByStart(t *testing.T, slots []domain.Slot, start types.TimeString) domain.Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == start {
			return s
		}
	}
	t.Fatalf("no slot starting at %s", start)
	return domain.Slot{}
}

func TestGenerator_Generate_DayWithBreak(t *testing.T) {
	g := NewGenerator()

	// Рабочее окно 10:00-18:00 с перерывом 13:00-14:00, услуга 60 минут,
	// шаг 30 минут
	w := window("10:00", "18:00", domain.BreakInterval{Start: "13:00", End: "14:00"})

	slots, err := g.Generate(w, 60, 30, 0, nil)
	require.NoError(t, err)

	// Кандидаты 10:00 .. 17:00 с шагом 30 — последний, чей конец
	// помещается до закрытия
	require.Len(t, slots, 15)
	assert.Equal(t, types.TimeString("10:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1].StartTime)

	// 12:30-13:30 задевает перерыв, 14:00-15:00 начинается сразу после него
	assert.Equal(t, domain.SlotBlocked, slotByStart(t, slots, "12:30").Status)
	assert.Equal(t, domain.SlotBlocked, slotByStart(t, slots, "13:00").Status)
	assert.Equal(t, domain.SlotBlocked, slotByStart(t, slots, "13:30").Status)
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, slots, "14:00").Status)

	// Слот, заканчивающийся ровно в начале перерыва, свободен
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, slots, "12:00").Status)
}

func TestGenerator_Generate_ConflictWithBuffer(t *testing.T) {
	g := NewGenerator()
	w := window("10:00", "18:00")

	// Бронирование 12:00-13:00 с буфером 15 минут занимает 11:45-13:15
	bookings := []*domain.Booking{activeBooking("12:00", 60, 15)}

	slots, err := g.Generate(w, 60, 15, 0, bookings)
	require.NoError(t, err)

	assert.Equal(t, domain.SlotAvailable, slotByStart(t, slots, "10:45").Status)
	assert.Equal(t, domain.SlotBooked, slotByStart(t, slots, "11:00").Status)
	assert.Equal(t, domain.SlotBooked, slotByStart(t, slots, "12:30").Status)
	assert.Equal(t, domain.SlotBooked, slotByStart(t, slots, "13:00").Status)
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, slots, "13:15").Status)
}

func TestGenerator_Generate_CancelledBookingFreesSlot(t *testing.T) {
	g := NewGenerator()
	w := window("10:00", "12:00")

	cancelled := activeBooking("10:00", 60, 0)
	cancelled.Status = domain.StatusCancelled

	slots, err := g.Generate(w, 60, 60, 0, []*domain.Booking{cancelled})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotAvailable, slotByStart(t, slots, "10:00").Status)
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, slots, "11:00").Status)
}

func TestGenerator_Generate_NoWindow(t *testing.T) {
	g := NewGenerator()

	slots, err := g.Generate(nil, 60, 30, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)

	// Нулевое окно эквивалентно выходному
	slots, err = g.Generate(window("10:00", "10:00"), 60, 30, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerator_Generate_DurationLongerThanWindow(t *testing.T) {
	g := NewGenerator()

	slots, err := g.Generate(window("10:00", "11:00"), 90, 30, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerator_Generate_LastSlotEndsAtClosing(t *testing.T) {
	g := NewGenerator()

	slots, err := g.Generate(window("10:00", "12:00"), 60, 30, 0, nil)
	require.NoError(t, err)

	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("11:00"), slots[2].StartTime)
}

func TestGenerator_Generate_InvalidParams(t *testing.T) {
	g := NewGenerator()
	w := window("10:00", "18:00")

	_, err := g.Generate(w, 0, 30, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = g.Generate(w, 60, 0, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidParams)

	// Нечитаемое окно неотличимо от пустого — ресурс просто не работает
	slots, err := g.Generate(window("bad", "18:00"), 60, 30, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestConflictExists(t *testing.T) {
	testCases := []struct {
		name     string
		bookings []*domain.Booking
		startMin int
		endMin   int
		buffer   int
		expected bool
	}{
		{
			name:     "no bookings",
			startMin: 600, endMin: 660,
			expected: false,
		},
		{
			name:     "overlap",
			bookings: []*domain.Booking{activeBooking("10:30", 60, 0)},
			startMin: 600, endMin: 660,
			expected: true,
		},
		{
			name:     "touching boundaries do not conflict",
			bookings: []*domain.Booking{activeBooking("11:00", 60, 0)},
			startMin: 600, endMin: 660,
			expected: false,
		},
		{
			name:     "booking buffer extends into candidate",
			bookings: []*domain.Booking{activeBooking("11:00", 60, 15)},
			startMin: 600, endMin: 660,
			expected: true,
		},
		{
			name:     "candidate buffer extends into booking",
			bookings: []*domain.Booking{activeBooking("11:00", 60, 0)},
			startMin: 600, endMin: 660, buffer: 15,
			expected: true,
		},
		{
			name: "terminal statuses ignored",
			bookings: []*domain.Booking{
				func() *domain.Booking {
					b := activeBooking("10:30", 60, 0)
					b.Status = domain.StatusNoShow
					return b
				}(),
			},
			startMin: 600, endMin: 660,
			expected: false,
		},
		{
			name:     "malformed start time skipped",
			bookings: []*domain.Booking{activeBooking("bad", 60, 0)},
			startMin: 600, endMin: 660,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ConflictExists(tc.bookings, tc.startMin, tc.endMin, tc.buffer)
			assert.Equal(t, tc.expected, got)
		})
	}
}
