package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservly/booking-engine/internal/domain"
)

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func bookingRow() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns).AddRow(
		int64(5),                     // id
		"ref-123",                    // reference
		int64(1),                     // tenant_id
		int64(10),                    // resource_id
		time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), // booking_date
		"19:00:00", // start_time
		60,         // duration_minutes
		15,         // buffer_minutes
		"confirmed",
		2,
		"Anna",
		"+15550101",
		nil, // notes
		nil, // cancellation_reason
		nil, // cancelled_at
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT .+ FROM bookings WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(bookingRow())

	booking, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), booking.ID)
	assert.Equal(t, "ref-123", booking.Reference)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	// TIME колонка нормализуется к HH:MM
	assert.Equal(t, "19:00", booking.StartTime.String())
	assert.Nil(t, booking.Notes)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT .+ FROM bookings WHERE id = \\$1").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newTestRepo(t)

	createdAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO bookings .+ RETURNING id, created_at, updated_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(100), createdAt, createdAt))

	booking := &domain.Booking{
		Reference:       "ref-456",
		TenantID:        1,
		ResourceID:      10,
		BookingDate:     time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "19:00",
		DurationMinutes: 60,
		BufferMinutes:   15,
		Status:          domain.StatusPending,
		PartySize:       2,
		CustomerName:    "Anna",
		CustomerPhone:   "+15550101",
	}

	saved, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)

	assert.Equal(t, int64(100), saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByResourceWithFilter_ExcludesInactive(t *testing.T) {
	repo, mock := newTestRepo(t)

	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	// Терминальные статусы исключаются на уровне запроса
	mock.ExpectQuery("SELECT .+ FROM bookings WHERE resource_id = \\$1 AND booking_date >= \\$2 AND booking_date <= \\$3 AND status NOT IN .+ ORDER BY start_time ASC").
		WithArgs(int64(10), date, date, "cancelled", "no_show", "completed").
		WillReturnRows(bookingRow())

	bookings, err := repo.GetByResourceWithFilter(context.Background(), domain.ResourceBookingsFilter{
		ResourceID: 10,
		StartDate:  &date,
		EndDate:    &date,
	})
	require.NoError(t, err)

	require.Len(t, bookings, 1)
	assert.Equal(t, int64(5), bookings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByResourceWithFilter_ExcludeID(t *testing.T) {
	repo, mock := newTestRepo(t)

	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM bookings WHERE resource_id = \\$1 AND booking_date >= \\$2 AND booking_date <= \\$3 AND id <> \\$4 AND status NOT IN .+").
		WithArgs(int64(10), date, date, int64(5), "cancelled", "no_show", "completed").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	excludeID := int64(5)
	bookings, err := repo.GetByResourceWithFilter(context.Background(), domain.ResourceBookingsFilter{
		ResourceID: 10,
		StartDate:  &date,
		EndDate:    &date,
		ExcludeID:  &excludeID,
	})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE bookings SET status = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2").
		WithArgs("no_show", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 5, domain.StatusNoShow)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE bookings SET status = .+").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 404, domain.StatusNoShow)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE bookings SET status = \\$1, cancellation_reason = \\$2, cancelled_at = NOW\\(\\), updated_at = NOW\\(\\) WHERE id = \\$3").
		WithArgs("cancelled", "plans changed", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 5, "plans changed")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Reschedule(t *testing.T) {
	repo, mock := newTestRepo(t)

	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE bookings SET booking_date = \\$1, start_time = \\$2, duration_minutes = \\$3, status = \\$4, updated_at = NOW\\(\\) WHERE id = \\$5").
		WithArgs(date, "15:00", 90, "pending", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Reschedule(context.Background(), 5, date, "15:00", 90)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
