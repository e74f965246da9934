package rules

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/dbmetrics"
	"github.com/reservly/booking-engine/pkg/psqlbuilder"
)

// Repository репозиторий каталога правил: индустриальные дефолты
// и tenant-level переопределения
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetIndustryDefaults получает набор правил индустрии
func (r *Repository) GetIndustryDefaults(ctx context.Context, industry string) ([]domain.ConstraintRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"industry",
		"name",
		"family",
		"params",
		"mandatory",
		"priority",
		"enabled",
		"created_at",
		"updated_at",
	).
		From("constraint_rules").
		Where(squirrel.Eq{"industry": industry}).
		OrderBy("priority ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetIndustryDefaults - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetIndustryDefaults - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.ConstraintRule, 0)
	for rows.Next() {
		var rule domain.ConstraintRule
		var paramsRaw []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.Industry,
			&rule.Name,
			&rule.Family,
			&paramsRaw,
			&rule.Mandatory,
			&rule.Priority,
			&rule.Enabled,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetIndustryDefaults - scan row: %v", ErrScanRow, err)
		}

		if len(paramsRaw) > 0 {
			if err := json.Unmarshal(paramsRaw, &rule.Params); err != nil {
				return nil, fmt.Errorf("%w: GetIndustryDefaults - unmarshal params: %v", ErrScanRow, err)
			}
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetIndustryDefaults - rows error: %v", ErrScanRow, err)
	}

	if len(rules) == 0 {
		return nil, ErrNoRulesForIndustry
	}

	return rules, nil
}

// GetTenantOverrides получает переопределения правил тенанта
// Пустой результат — не ошибка: большинство тенантов живёт на дефолтах
func (r *Repository) GetTenantOverrides(ctx context.Context, tenantID int64) ([]domain.TenantRuleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"rule_name",
		"params",
		"mandatory",
		"priority",
		"enabled",
		"created_at",
		"updated_at",
	).
		From("tenant_rule_overrides").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("rule_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTenantOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTenantOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]domain.TenantRuleOverride, 0)
	for rows.Next() {
		var o domain.TenantRuleOverride
		var paramsRaw []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&o.ID,
			&o.TenantID,
			&o.RuleName,
			&paramsRaw,
			&o.Mandatory,
			&o.Priority,
			&o.Enabled,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTenantOverrides - scan row: %v", ErrScanRow, err)
		}

		if len(paramsRaw) > 0 {
			if err := json.Unmarshal(paramsRaw, &o.Params); err != nil {
				return nil, fmt.Errorf("%w: GetTenantOverrides - unmarshal params: %v", ErrScanRow, err)
			}
		}

		o.CreatedAt = createdAt.Time
		o.UpdatedAt = updatedAt.Time

		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTenantOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}
