package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/internal/service/constraints"
	"github.com/reservly/booking-engine/internal/service/matcher"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = f.nextID
	booking.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByResourceWithFilter(_ context.Context, _ domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeMatcher struct {
	result *matcher.Result
	err    error
}

func (f *fakeMatcher) Match(_ context.Context, _ *matcher.Request) (*matcher.Result, error) {
	return f.result, f.err
}

type fakeSchedule struct {
	window *domain.WorkingWindow
}

func (f *fakeSchedule) WorkingWindow(_ context.Context, _ *domain.BookableResource, _ time.Time) (*domain.WorkingWindow, error) {
	return f.window, nil
}

type fakeValidator struct {
	catalog domain.RuleCatalog
	lastOp  *constraints.Operation
}

func (f *fakeValidator) Validate(_ context.Context, _ string, op *constraints.Operation) (*domain.ValidationResult, error) {
	f.lastOp = op
	v := constraints.Validator{}
	return v.ValidateWithCatalog(f.catalog, op), nil
}

type fakeRecorder struct {
	records []*domain.OperationAuditRecord
}

func (f *fakeRecorder) Record(_ context.Context, record *domain.OperationAuditRecord) {
	f.records = append(f.records, record)
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
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

func testResource() *domain.BookableResource {
	return &domain.BookableResource{
		ID:            10,
		TenantID:      1,
		Name:          "Window Table",
		ResourceType:  "restaurant",
		Status:        domain.ResourceActive,
		MinCapacity:   2,
		MaxCapacity:   4,
		BufferMinutes: 15,
	}
}

func testRequest() *Request {
	return &Request{
		TenantID:        1,
		RequestType:     "restaurant",
		Date:            time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "19:00",
		DurationMinutes: 60,
		PartySize:       2,
		CustomerName:    "Anna",
		CustomerPhone:   "+15550101",
		ActorRole:       domain.ActorCustomer,
	}
}

type testEnv struct {
	uc        *UseCase
	bookings  *fakeBookingRepo
	matcher   *fakeMatcher
	validator *fakeValidator
	recorder  *fakeRecorder
	tx        *fakeTxManager
}

func newTestEnv(matchResult *matcher.Result) *testEnv {
	env := &testEnv{
		bookings:  &fakeBookingRepo{nextID: 100},
		matcher:   &fakeMatcher{result: matchResult},
		validator: &fakeValidator{catalog: constraints.DefaultCatalog("restaurant", 1)},
		recorder:  &fakeRecorder{},
		tx:        &fakeTxManager{},
	}
	env.uc = NewUseCase(
		env.bookings,
		env.matcher,
		&fakeSchedule{window: &domain.WorkingWindow{Start: "10:00", End: "22:00"}},
		env.validator,
		env.recorder,
		env.tx,
		nopLogger{},
	)
	env.uc.timeProvider = &fixedTimeProvider{now: testNow}
	return env
}

func matchedResult(res *domain.BookableResource) *matcher.Result {
	return &matcher.Result{Ranked: []domain.RankedResource{{Resource: res, Score: 0.8}}}
}

func TestUseCase_Execute_CreatesBooking(t *testing.T) {
	resource := testResource()
	env := newTestEnv(matchedResult(resource))

	resp, err := env.uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, resource.ID, resp.ResourceID)
	assert.Equal(t, "Window Table", resp.ResourceName)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Empty(t, resp.Warnings)

	// Буфер ресурса фиксируется на бронировании в момент создания
	require.NotNil(t, env.bookings.created)
	assert.Equal(t, 15, env.bookings.created.BufferMinutes)
	assert.Equal(t, 1, env.tx.calls)
}

func TestUseCase_Execute_AuditsSuccessfulCreate(t *testing.T) {
	env := newTestEnv(matchedResult(testResource()))

	_, err := env.uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, env.recorder.records, 1)
	record := env.recorder.records[0]
	assert.Equal(t, domain.OpCreate, record.Operation)
	assert.Equal(t, domain.ActorCustomer, record.ActorRole)
	assert.True(t, record.Passed)
	require.NotNil(t, record.BookingID)
	assert.Equal(t, int64(100), *record.BookingID)
	assert.Greater(t, record.ConstraintsChecked, 0)
}

func TestUseCase_Execute_SlotConflictRejected(t *testing.T) {
	env := newTestEnv(matchedResult(testResource()))
	// Конкурент успел занять окно между подбором и транзакцией
	env.bookings.bookings = []*domain.Booking{{
		StartTime:       "19:00",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}}

	_, err := env.uc.Execute(context.Background(), testRequest())
	require.Error(t, err)

	var vErr *constraints.ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	assert.False(t, vErr.Result.IsValid)
	require.NotEmpty(t, vErr.Result.Violations)
	assert.Equal(t, domain.RuleSlotConflict, vErr.Result.Violations[0].ConstraintName)
	assert.Equal(t, domain.ViolationConflict, vErr.Result.Violations[0].ViolationType)

	// Запись не создана, но отказ попал в журнал
	assert.Nil(t, env.bookings.created)
	require.Len(t, env.recorder.records, 1)
	assert.False(t, env.recorder.records[0].Passed)
	assert.Nil(t, env.recorder.records[0].BookingID)
}

func TestUseCase_Execute_NoResourceAvailable(t *testing.T) {
	env := newTestEnv(&matcher.Result{Ranked: []domain.RankedResource{}})

	_, err := env.uc.Execute(context.Background(), testRequest())
	require.Error(t, err)

	var vErr *constraints.ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.RuleNoResourceAvailable, vErr.Result.Violations[0].ConstraintName)

	require.NotNil(t, env.validator.lastOp)
	assert.True(t, env.validator.lastOp.NoResourceAvailable)
}

func TestUseCase_Execute_PreferredUnavailableWarning(t *testing.T) {
	result := matchedResult(testResource())
	result.PreferredUnavailable = true
	env := newTestEnv(result)

	resp, err := env.uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, domain.RulePreferredResource, resp.Warnings[0].ConstraintName)
}

func TestUseCase_Execute_MatcherFailure(t *testing.T) {
	env := newTestEnv(nil)
	env.matcher.err = errors.New("boom")

	_, err := env.uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	env := newTestEnv(matchedResult(testResource()))

	testCases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero tenant", func(r *Request) { r.TenantID = 0 }},
		{"empty request type", func(r *Request) { r.RequestType = " " }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"bad start time", func(r *Request) { r.StartTime = "19h00" }},
		{"duration too short", func(r *Request) { r.DurationMinutes = 1 }},
		{"duration too long", func(r *Request) { r.DurationMinutes = 600 }},
		{"negative party size", func(r *Request) { r.PartySize = -1 }},
		{"empty customer name", func(r *Request) { r.CustomerName = "" }},
		{"empty customer phone", func(r *Request) { r.CustomerPhone = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest()
			tc.mutate(req)
			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Невалидный запрос не доходит ни до транзакции, ни до журнала
	assert.Equal(t, 0, env.tx.calls)
	assert.Empty(t, env.recorder.records)
}
