package constraints

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservly/booking-engine/internal/domain"
	rulesStorage "github.com/reservly/booking-engine/internal/infra/storage/rules"
)

type fakeCatalogSource struct {
	catalog domain.RuleCatalog
	err     error
}

func (f *fakeCatalogSource) CatalogFor(_ context.Context, _ string, _ int64) (domain.RuleCatalog, error) {
	return f.catalog, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func activeResource() *domain.BookableResource {
	return &domain.BookableResource{
		ID:           10,
		TenantID:     1,
		Name:         "Window Table",
		ResourceType: "restaurant",
		Status:       domain.ResourceActive,
		MinCapacity:  2,
		MaxCapacity:  4,
	}
}

// createOp — валидная операция создания на завтра, 19:00-20:00
func createOp() *Operation {
	return &Operation{
		Kind:            OpCreate,
		Now:             testNow,
		TenantID:        1,
		Resource:        activeResource(),
		Window:          &domain.WorkingWindow{Start: "10:00", End: "22:00"},
		Date:            testNow.AddDate(0, 0, 1),
		StartTime:       "19:00",
		DurationMinutes: 60,
		PartySize:       2,
	}
}

func cancelOp(target *domain.Booking) *Operation {
	return &Operation{
		Kind:     OpCancel,
		Now:      testNow,
		TenantID: 1,
		Resource: activeResource(),
		Target:   target,
	}
}

func violationNames(vs []domain.Violation) []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.ConstraintName
	}
	return names
}

func TestValidator_ValidCreatePasses(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

	result, err := v.Validate(context.Background(), "restaurant", createOp())
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Violations)
	assert.Empty(t, result.Warnings)
	assert.Greater(t, result.ConstraintsChecked, 0)
}

func TestValidator_AllRulesCheckedNoEarlyExit(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

	// Сразу два независимых нарушения: неактивный ресурс и перегруз стола
	op := createOp()
	op.Resource.Status = domain.ResourceInactive
	op.PartySize = 10

	result, err := v.Validate(context.Background(), "restaurant", op)
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	names := violationNames(result.Violations)
	assert.Contains(t, names, domain.RuleResourceActive)
	assert.Contains(t, names, domain.RuleTableCapacity)
}

func TestValidator_ViolationsSortedByPriority(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

	op := createOp()
	op.Resource.Status = domain.ResourceOnLeave // priority 10
	op.StartTime = "23:00"                      // вне рабочих часов, priority 20
	op.PartySize = 10                           // перегруз стола, priority 40

	result, err := v.Validate(context.Background(), "restaurant", op)
	require.NoError(t, err)

	require.Len(t, result.Violations, 3)
	for i := 1; i < len(result.Violations); i++ {
		assert.LessOrEqual(t, result.Violations[i-1].Priority, result.Violations[i].Priority)
	}
	assert.Equal(t, domain.RuleResourceActive, result.Violations[0].ConstraintName)
}

func TestValidator_SlotConflictIsConflictType(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

	op := createOp()
	op.ActiveBookings = []*domain.Booking{{
		StartTime:       "19:30",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}}

	result, err := v.Validate(context.Background(), "restaurant", op)
	require.NoError(t, err)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, domain.RuleSlotConflict, result.Violations[0].ConstraintName)
	assert.Equal(t, domain.ViolationConflict, result.Violations[0].ViolationType)
}

func TestValidator_TimingRules(t *testing.T) {
	testCases := []struct {
		name         string
		mutate       func(*Operation)
		expectedRule string
	}{
		{
			name: "closed day",
			mutate: func(op *Operation) {
				op.Window = nil
			},
			expectedRule: domain.RuleOutsideOperatingHrs,
		},
		{
			name: "start before opening",
			mutate: func(op *Operation) {
				op.StartTime = "08:00"
			},
			expectedRule: domain.RuleOutsideOperatingHrs,
		},
		{
			name: "start at closing",
			mutate: func(op *Operation) {
				op.StartTime = "22:00"
			},
			expectedRule: domain.RuleOutsideOperatingHrs,
		},
		{
			name: "overlaps break",
			mutate: func(op *Operation) {
				op.Window.Breaks = []domain.BreakInterval{{Start: "19:30", End: "20:30"}}
			},
			expectedRule: domain.RuleOutsideOperatingHrs,
		},
		{
			name: "extends past closing",
			mutate: func(op *Operation) {
				op.StartTime = "21:30"
			},
			expectedRule: domain.RuleExtendsPastClosing,
		},
		{
			name: "too little notice",
			mutate: func(op *Operation) {
				op.Date = testNow
				op.StartTime = "12:15" // за 15 минут при требуемых 30
			},
			expectedRule: domain.RuleMinAdvanceNotice,
		},
		{
			name: "too far in advance",
			mutate: func(op *Operation) {
				op.Date = testNow.AddDate(0, 0, 120)
			},
			expectedRule: domain.RuleMaxAdvanceWindow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

			op := createOp()
			tc.mutate(op)

			result, err := v.Validate(context.Background(), "restaurant", op)
			require.NoError(t, err)

			assert.False(t, result.IsValid)
			assert.Contains(t, violationNames(result.Violations), tc.expectedRule)
		})
	}
}

func TestValidator_BoundaryTimesPass(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

	// Бронирование, заканчивающееся ровно в закрытие, помещается
	op := createOp()
	op.StartTime = "21:00"
	op.DurationMinutes = 60

	result, err := v.Validate(context.Background(), "restaurant", op)
	require.NoError(t, err)
	assert.True(t, result.IsValid)
}

func TestValidator_ZeroPartySizeSkipsCapacity(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("salon", 1)}, nopLogger{})

	// Услуги один-на-один не передают размер группы
	op := createOp()
	op.PartySize = 0

	result, err := v.Validate(context.Background(), "salon", op)
	require.NoError(t, err)
	assert.True(t, result.IsValid)
}

func TestValidator_NoResourceAvailable(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

	op := createOp()
	op.Resource = nil
	op.Window = nil
	op.NoResourceAvailable = true

	result, err := v.Validate(context.Background(), "restaurant", op)
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.Contains(t, violationNames(result.Violations), domain.RuleNoResourceAvailable)
}

func TestValidator_PreferredUnavailableIsWarning(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

	op := createOp()
	op.PreferredUnavailable = true

	result, err := v.Validate(context.Background(), "restaurant", op)
	require.NoError(t, err)

	// Предпочтение — не гарантия: операция проходит с предупреждением
	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.RulePreferredResource, result.Warnings[0].ConstraintName)
}

func TestValidator_LateCancellationAnnotatesFee(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

	// Отмена за 2 часа при требуемых 24 часах
	target := &domain.Booking{
		ID:              5,
		TenantID:        1,
		ResourceID:      10,
		BookingDate:     testNow,
		StartTime:       "14:00",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}

	result, err := v.Validate(context.Background(), "restaurant", cancelOp(target))
	require.NoError(t, err)

	// Политика по умолчанию не блокирует, а аннотирует последствия
	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)

	w := result.Warnings[0]
	assert.Equal(t, domain.RuleCancellationNotice, w.ConstraintName)
	require.NotNil(t, w.FinancialImpact)
	assert.Contains(t, *w.FinancialImpact, "50%")
}

func TestValidator_TenantCanMakeCancellationNoticeBlocking(t *testing.T) {
	catalog := DefaultCatalog("restaurant", 1)
	for i := range catalog.Rules {
		if catalog.Rules[i].Name == domain.RuleCancellationNotice {
			catalog.Rules[i].Mandatory = true
		}
	}
	v := NewValidator(&fakeCatalogSource{catalog: catalog}, nopLogger{})

	target := &domain.Booking{
		ID:              5,
		TenantID:        1,
		BookingDate:     testNow,
		StartTime:       "14:00",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}

	result, err := v.Validate(context.Background(), "restaurant", cancelOp(target))
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.Contains(t, violationNames(result.Violations), domain.RuleCancellationNotice)
}

func TestValidator_AlreadyCancelledBooking(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

	target := &domain.Booking{
		ID:              5,
		TenantID:        1,
		BookingDate:     testNow.AddDate(0, 0, 7),
		StartTime:       "14:00",
		DurationMinutes: 60,
		Status:          domain.StatusCancelled,
	}

	result, err := v.Validate(context.Background(), "restaurant", cancelOp(target))
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, domain.RuleBookingCancellable, result.Violations[0].ConstraintName)
	assert.Equal(t, "the booking is already cancelled", result.Violations[0].Message)
}

func TestValidator_RescheduleTerminalBooking(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("salon", 1)}, nopLogger{})

	op := createOp()
	op.Kind = OpReschedule
	op.Target = &domain.Booking{
		ID:     5,
		Status: domain.StatusCompleted,
	}

	result, err := v.Validate(context.Background(), "salon", op)
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.Contains(t, violationNames(result.Violations), domain.RuleBookingReschedulable)
}

func TestValidator_MissingParamDegradesToWarning(t *testing.T) {
	catalog := domain.RuleCatalog{
		Industry: "restaurant",
		TenantID: 1,
		Rules: []domain.ConstraintRule{
			{Name: domain.RuleMinAdvanceNotice, Mandatory: true, Priority: 30, Enabled: true},
		},
	}
	v := NewValidator(&fakeCatalogSource{catalog: catalog}, nopLogger{})

	result, err := v.Validate(context.Background(), "restaurant", createOp())
	require.NoError(t, err)

	// Пробел конфигурации не блокирует операцию несмотря на mandatory
	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.ViolationConfiguration, result.Warnings[0].ViolationType)
}

func TestValidator_UnknownRuleIsConfigurationGap(t *testing.T) {
	catalog := domain.RuleCatalog{
		Industry: "restaurant",
		TenantID: 1,
		Rules: []domain.ConstraintRule{
			{Name: "blood_moon_blackout", Mandatory: true, Priority: 5, Enabled: true},
		},
	}
	v := NewValidator(&fakeCatalogSource{catalog: catalog}, nopLogger{})

	result, err := v.Validate(context.Background(), "restaurant", createOp())
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Equal(t, 1, result.ConstraintsChecked)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.ViolationConfiguration, result.Warnings[0].ViolationType)
}

func TestValidator_DisabledRuleSkipped(t *testing.T) {
	catalog := DefaultCatalog("restaurant", 1)
	for i := range catalog.Rules {
		if catalog.Rules[i].Name == domain.RuleTableCapacity {
			catalog.Rules[i].Enabled = false
		}
	}
	v := NewValidator(&fakeCatalogSource{catalog: catalog}, nopLogger{})

	op := createOp()
	op.PartySize = 10

	result, err := v.Validate(context.Background(), "restaurant", op)
	require.NoError(t, err)
	assert.True(t, result.IsValid)
}

func TestValidator_InapplicableRulesNotCounted(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{catalog: DefaultCatalog("restaurant", 1)}, nopLogger{})

	result, err := v.Validate(context.Background(), "restaurant", createOp())
	require.NoError(t, err)

	// Из каталога по умолчанию к create не применимы только политики
	// отмены и переноса
	assert.Equal(t, 9, result.ConstraintsChecked)
}

func TestValidator_FallsBackToBuiltinCatalog(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{err: rulesStorage.ErrNoRulesForIndustry}, nopLogger{})

	op := createOp()
	op.PartySize = 10

	result, err := v.Validate(context.Background(), "food_truck", op)
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.Contains(t, violationNames(result.Violations), domain.RuleTableCapacity)
}

func TestValidator_CatalogLoadFailure(t *testing.T) {
	v := NewValidator(&fakeCatalogSource{err: errors.New("connection refused")}, nopLogger{})

	_, err := v.Validate(context.Background(), "restaurant", createOp())
	assert.ErrorIs(t, err, ErrInternal)
}
