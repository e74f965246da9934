package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservly/booking-engine/internal/domain"
	resourceStorage "github.com/reservly/booking-engine/internal/infra/storage/resource"
	"github.com/reservly/booking-engine/internal/service/slots"
)

type fakeResourceRepo struct {
	resource *domain.BookableResource
}

func (f *fakeResourceRepo) GetByID(_ context.Context, id int64) (*domain.BookableResource, error) {
	if f.resource == nil || f.resource.ID != id {
		return nil, resourceStorage.ErrResourceNotFound
	}
	return f.resource, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByResourceWithFilter(_ context.Context, _ domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeSchedule struct {
	window *domain.WorkingWindow
}

func (f *fakeSchedule) WorkingWindow(_ context.Context, _ *domain.BookableResource, _ time.Time) (*domain.WorkingWindow, error) {
	return f.window, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func testResource() *domain.BookableResource {
	return &domain.BookableResource{
		ID:            10,
		TenantID:      1,
		Name:          "Chair One",
		ResourceType:  "salon",
		Status:        domain.ResourceActive,
		BufferMinutes: 0,
	}
}

func newUseCaseWith(resource *domain.BookableResource, window *domain.WorkingWindow, bookings []*domain.Booking) *UseCase {
	return NewUseCase(
		&fakeResourceRepo{resource: resource},
		&fakeBookingRepo{bookings: bookings},
		&fakeSchedule{window: window},
		slots.NewGenerator(),
		nopLogger{},
	)
}

func testRequest() *Request {
	return &Request{
		TenantID:           1,
		ResourceID:         10,
		Date:               testDate,
		DurationMinutes:    60,
		GranularityMinutes: 30,
	}
}

func TestUseCase_Execute_GeneratesSlotGrid(t *testing.T) {
	window := &domain.WorkingWindow{
		Start:  "10:00",
		End:    "18:00",
		Breaks: []domain.BreakInterval{{Start: "13:00", End: "14:00"}},
	}
	booked := []*domain.Booking{{
		StartTime:       "15:00",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}}

	uc := newUseCaseWith(testResource(), window, booked)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, resp.WorksThisDay)
	require.Len(t, resp.Slots, 15)

	byStart := make(map[string]domain.SlotStatus, len(resp.Slots))
	for _, s := range resp.Slots {
		byStart[s.StartTime.String()] = s.Status
	}

	assert.Equal(t, domain.SlotAvailable, byStart["10:00"])
	assert.Equal(t, domain.SlotBlocked, byStart["13:30"])
	assert.Equal(t, domain.SlotBooked, byStart["15:00"])
	assert.Equal(t, domain.SlotBooked, byStart["14:30"])
	assert.Equal(t, domain.SlotAvailable, byStart["16:00"])
}

func TestUseCase_Execute_DefaultsApplied(t *testing.T) {
	uc := newUseCaseWith(testResource(), &domain.WorkingWindow{Start: "10:00", End: "12:00"}, nil)

	req := testRequest()
	req.DurationMinutes = 0
	req.GranularityMinutes = 0

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Дефолты: услуга 60 минут, шаг 15 минут -> 10:00..11:00
	require.Len(t, resp.Slots, 5)
	assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
}

func TestUseCase_Execute_DayOff(t *testing.T) {
	uc := newUseCaseWith(testResource(), nil, nil)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// "Не работает" отличимо от "всё занято"
	assert.False(t, resp.WorksThisDay)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_ResourceNotFound(t *testing.T) {
	uc := newUseCaseWith(nil, nil, nil)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUseCase_Execute_ForeignTenant(t *testing.T) {
	resource := testResource()
	resource.TenantID = 42

	uc := newUseCaseWith(resource, nil, nil)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newUseCaseWith(testResource(), nil, nil)

	testCases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero tenant", func(r *Request) { r.TenantID = 0 }},
		{"zero resource", func(r *Request) { r.ResourceID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"granularity too small", func(r *Request) { r.GranularityMinutes = 2 }},
		{"duration too long", func(r *Request) { r.DurationMinutes = 600 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest()
			tc.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
