package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservly/booking-engine/internal/domain"
	bookingStorage "github.com/reservly/booking-engine/internal/infra/storage/booking"
	"github.com/reservly/booking-engine/internal/service/constraints"
	"github.com/reservly/booking-engine/pkg/types"
)

type fakeBookingRepo struct {
	booking         *domain.Booking
	cancelledID     int64
	cancelledReason string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingStorage.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

type fakeResourceRepo struct {
	resource *domain.BookableResource
}

func (f *fakeResourceRepo) GetByID(_ context.Context, _ int64) (*domain.BookableResource, error) {
	return f.resource, nil
}

type fakeValidator struct {
	catalog domain.RuleCatalog
}

func (f *fakeValidator) Validate(_ context.Context, _ string, op *constraints.Operation) (*domain.ValidationResult, error) {
	v := constraints.Validator{}
	return v.ValidateWithCatalog(f.catalog, op), nil
}

type fakeRecorder struct {
	records []*domain.OperationAuditRecord
}

func (f *fakeRecorder) Record(_ context.Context, record *domain.OperationAuditRecord) {
	f.records = append(f.records, record)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func testBooking(status domain.BookingStatus, startsIn time.Duration) *domain.Booking {
	startAt := testNow.Add(startsIn)
	return &domain.Booking{
		ID:              5,
		TenantID:        1,
		ResourceID:      10,
		BookingDate:     time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:       types.NewTimeString(startAt),
		DurationMinutes: 60,
		Status:          status,
	}
}

type testEnv struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	recorder *fakeRecorder
}

func newTestEnv(booking *domain.Booking) *testEnv {
	env := &testEnv{
		bookings: &fakeBookingRepo{booking: booking},
		recorder: &fakeRecorder{},
	}
	env.uc = NewUseCase(
		env.bookings,
		&fakeResourceRepo{resource: &domain.BookableResource{
			ID:           10,
			TenantID:     1,
			Name:         "Window Table",
			ResourceType: "restaurant",
			Status:       domain.ResourceActive,
		}},
		&fakeValidator{catalog: constraints.DefaultCatalog("restaurant", 1)},
		env.recorder,
		fakeTxManager{},
		nopLogger{},
	)
	env.uc.timeProvider = &fixedTimeProvider{now: testNow}
	return env
}

func testRequest() *Request {
	return &Request{
		TenantID:  1,
		BookingID: 5,
		Reason:    "plans changed",
		ActorRole: domain.ActorCustomer,
	}
}

func TestUseCase_Execute_CancelsBooking(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed, 72*time.Hour))

	resp, err := env.uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, testNow, *resp.CancelledAt)
	assert.Empty(t, resp.Warnings)

	assert.Equal(t, int64(5), env.bookings.cancelledID)
	assert.Equal(t, "plans changed", env.bookings.cancelledReason)

	require.Len(t, env.recorder.records, 1)
	assert.Equal(t, domain.OpCancel, env.recorder.records[0].Operation)
	assert.True(t, env.recorder.records[0].Passed)
}

func TestUseCase_Execute_LateCancellationWarnsAboutFee(t *testing.T) {
	// Отмена за два часа до начала при политике в 24 часа
	env := newTestEnv(testBooking(domain.StatusConfirmed, 2*time.Hour))

	resp, err := env.uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// Политика по умолчанию пропускает отмену, но аннотирует штраф
	assert.Equal(t, int64(5), env.bookings.cancelledID)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, domain.RuleCancellationNotice, resp.Warnings[0].ConstraintName)
	require.NotNil(t, resp.Warnings[0].FinancialImpact)
}

func TestUseCase_Execute_AlreadyCancelled(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusCancelled, 72*time.Hour))

	_, err := env.uc.Execute(context.Background(), testRequest())
	require.Error(t, err)

	var vErr *constraints.ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Result.Violations, 1)
	assert.Equal(t, domain.RuleBookingCancellable, vErr.Result.Violations[0].ConstraintName)

	// Повторной отмены не было, отказ зафиксирован в журнале
	assert.Zero(t, env.bookings.cancelledID)
	require.Len(t, env.recorder.records, 1)
	assert.False(t, env.recorder.records[0].Passed)
}

func TestUseCase_Execute_BookingNotFound(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, env.recorder.records[0].Violations)
}

func TestUseCase_Execute_ForeignTenant(t *testing.T) {
	booking := testBooking(domain.StatusConfirmed, 72*time.Hour)
	booking.TenantID = 42
	env := newTestEnv(booking)

	_, err := env.uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, env.bookings.cancelledID)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed, 72*time.Hour))

	req := testRequest()
	req.BookingID = 0

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, env.recorder.records)
}
