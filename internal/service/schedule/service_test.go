package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservly/booking-engine/internal/domain"
	scheduleRepo "github.com/reservly/booking-engine/internal/infra/storage/schedule"
	"github.com/reservly/booking-engine/pkg/ptr"
)

type fakeShiftRepo struct {
	assignment *domain.ShiftAssignment
	err        error
}

func (f *fakeShiftRepo) GetByResourceAndDate(_ context.Context, _ int64, _ time.Time) (*domain.ShiftAssignment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.assignment == nil {
		return nil, scheduleRepo.ErrAssignmentNotFound
	}
	return f.assignment, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// tuesday — вторник, 2026-09-01
var tuesday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func weekdayResource() *domain.BookableResource {
	return &domain.BookableResource{
		ID: 10,
		WorkingHours: domain.WeekSchedule{
			Tuesday: domain.DaySchedule{
				IsOpen: true,
				Open:   ptr.Ptr("10:00"),
				Close:  ptr.Ptr("18:00"),
				Breaks: []domain.BreakInterval{{Start: "13:00", End: "14:00"}},
			},
		},
	}
}

func TestService_WorkingWindow_WeekdaySchedule(t *testing.T) {
	svc := NewService(&fakeShiftRepo{}, nopLogger{})

	window, err := svc.WorkingWindow(context.Background(), weekdayResource(), tuesday)
	require.NoError(t, err)

	require.NotNil(t, window)
	assert.Equal(t, "10:00", window.Start.String())
	assert.Equal(t, "18:00", window.End.String())
	require.Len(t, window.Breaks, 1)
}

func TestService_WorkingWindow_ClosedDay(t *testing.T) {
	svc := NewService(&fakeShiftRepo{}, nopLogger{})

	// Среда в недельном расписании не настроена — выходной
	wednesday := tuesday.AddDate(0, 0, 1)
	window, err := svc.WorkingWindow(context.Background(), weekdayResource(), wednesday)
	require.NoError(t, err)
	assert.Nil(t, window)
}

func TestService_WorkingWindow_AssignmentOverridesWeekday(t *testing.T) {
	svc := NewService(&fakeShiftRepo{assignment: &domain.ShiftAssignment{
		ID:         3,
		ResourceID: 10,
		ShiftDate:  tuesday,
		StartTime:  "12:00",
		EndTime:    "20:00",
	}}, nopLogger{})

	window, err := svc.WorkingWindow(context.Background(), weekdayResource(), tuesday)
	require.NoError(t, err)

	// Сменное назначение на дату вытесняет недельное расписание целиком
	require.NotNil(t, window)
	assert.Equal(t, "12:00", window.Start.String())
	assert.Equal(t, "20:00", window.End.String())
	assert.Empty(t, window.Breaks)
}

func TestService_WorkingWindow_RepoFailure(t *testing.T) {
	svc := NewService(&fakeShiftRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.WorkingWindow(context.Background(), weekdayResource(), tuesday)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_WorkingWindow_MalformedWeekdayTimes(t *testing.T) {
	resource := weekdayResource()
	resource.WorkingHours.Tuesday.Open = ptr.Ptr("10am")

	svc := NewService(&fakeShiftRepo{}, nopLogger{})

	_, err := svc.WorkingWindow(context.Background(), resource, tuesday)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}
