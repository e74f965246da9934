package rules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/ptr"
)

type fakeCatalogRepo struct {
	defaults      []domain.ConstraintRule
	overrides     []domain.TenantRuleOverride
	defaultsCalls int
}

func (f *fakeCatalogRepo) GetIndustryDefaults(_ context.Context, _ string) ([]domain.ConstraintRule, error) {
	f.defaultsCalls++
	return f.defaults, nil
}

func (f *fakeCatalogRepo) GetTenantOverrides(_ context.Context, _ int64) ([]domain.TenantRuleOverride, error) {
	return f.overrides, nil
}

func industryDefaults() []domain.ConstraintRule {
	return []domain.ConstraintRule{
		{
			Name:      domain.RuleMinAdvanceNotice,
			Industry:  "restaurant",
			Family:    domain.FamilyTiming,
			Params:    map[string]interface{}{"minNoticeMinutes": float64(30)},
			Mandatory: true,
			Priority:  30,
			Enabled:   true,
		},
		{
			Name:      domain.RuleCancellationNotice,
			Industry:  "restaurant",
			Family:    domain.FamilyPolicy,
			Params:    map[string]interface{}{"noticeMinutes": float64(1440)},
			Mandatory: false,
			Priority:  60,
			Enabled:   true,
		},
	}
}

func TestCatalogSource_AppliesTenantOverrides(t *testing.T) {
	repo := &fakeCatalogRepo{
		defaults: industryDefaults(),
		overrides: []domain.TenantRuleOverride{
			{
				TenantID:  1,
				RuleName:  domain.RuleMinAdvanceNotice,
				Params:    map[string]interface{}{"minNoticeMinutes": float64(120)},
				Mandatory: ptr.Ptr(false),
			},
		},
	}
	source := NewCatalogSource(repo, time.Minute)

	catalog, err := source.CatalogFor(context.Background(), "restaurant", 1)
	require.NoError(t, err)

	rule := catalog.Rule(domain.RuleMinAdvanceNotice)
	require.NotNil(t, rule)

	notice, ok := rule.IntParam("minNoticeMinutes")
	require.True(t, ok)
	assert.Equal(t, 120, notice)
	assert.False(t, rule.Mandatory)

	// Правило без переопределения остается индустриальным дефолтом
	untouched := catalog.Rule(domain.RuleCancellationNotice)
	require.NotNil(t, untouched)
	assert.Equal(t, 60, untouched.Priority)
}

func TestCatalogSource_CachesCatalog(t *testing.T) {
	repo := &fakeCatalogRepo{defaults: industryDefaults()}
	source := NewCatalogSource(repo, time.Minute)

	_, err := source.CatalogFor(context.Background(), "restaurant", 1)
	require.NoError(t, err)
	_, err = source.CatalogFor(context.Background(), "restaurant", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.defaultsCalls)

	// Другой тенант — отдельная запись в кэше
	_, err = source.CatalogFor(context.Background(), "restaurant", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.defaultsCalls)
}

func TestCatalogSource_InvalidateDropsCache(t *testing.T) {
	repo := &fakeCatalogRepo{defaults: industryDefaults()}
	source := NewCatalogSource(repo, time.Minute)

	_, err := source.CatalogFor(context.Background(), "restaurant", 1)
	require.NoError(t, err)

	source.Invalidate("restaurant", 1)

	_, err = source.CatalogFor(context.Background(), "restaurant", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.defaultsCalls)
}

func TestApplyOverrides_UnknownRuleIgnored(t *testing.T) {
	catalog := domain.ApplyOverrides("restaurant", 1, industryDefaults(), []domain.TenantRuleOverride{
		{TenantID: 1, RuleName: "not_a_rule", Enabled: ptr.Ptr(false)},
	})

	assert.Len(t, catalog.Rules, 2)
	assert.Nil(t, catalog.Rule("not_a_rule"))
}

func TestApplyOverrides_DisableRule(t *testing.T) {
	catalog := domain.ApplyOverrides("restaurant", 1, industryDefaults(), []domain.TenantRuleOverride{
		{TenantID: 1, RuleName: domain.RuleCancellationNotice, Enabled: ptr.Ptr(false)},
	})

	require.Len(t, catalog.EnabledRules(), 1)
	assert.Equal(t, domain.RuleMinAdvanceNotice, catalog.EnabledRules()[0].Name)
}
