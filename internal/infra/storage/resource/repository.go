package resource

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/dbmetrics"
	"github.com/reservly/booking-engine/pkg/psqlbuilder"
)

var resourceColumns = []string{
	"id",
	"tenant_id",
	"name",
	"resource_type",
	"tags",
	"status",
	"min_capacity",
	"max_capacity",
	"max_daily_assignments",
	"buffer_minutes",
	"rating",
	"experience_years",
	"commission_rate",
	"working_hours",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронируемыми ресурсами
// Ресурсы read-only с точки зрения движка бронирований: их создаёт и
// редактирует функциональность управления персоналом (вне этого сервиса)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ресурс по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookableResource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(resourceColumns...).
		From("bookable_resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanResource(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListByTenantAndType получает ресурсы тенанта, обслуживающие указанный тип запроса
// Фильтрация по тегам и доступности выполняется в matcher — количество
// ресурсов одного тенанта невелико
func (r *Repository) ListByTenantAndType(ctx context.Context, tenantID int64, resourceType string) ([]*domain.BookableResource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(resourceColumns...).
		From("bookable_resources").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"resource_type": resourceType}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenantAndType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenantAndType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]*domain.BookableResource, 0)
	for rows.Next() {
		res, err := r.scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByTenantAndType - scan row: %v", ErrScanRow, err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTenantAndType - rows error: %v", ErrScanRow, err)
	}

	return resources, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanResource(row rowScanner) (*domain.BookableResource, error) {
	var res domain.BookableResource
	var workingHoursRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.TenantID,
		&res.Name,
		&res.ResourceType,
		pq.Array(&res.Tags),
		&res.Status,
		&res.MinCapacity,
		&res.MaxCapacity,
		&res.MaxDailyAssignments,
		&res.BufferMinutes,
		&res.Rating,
		&res.ExperienceYears,
		&res.CommissionRate,
		&workingHoursRaw,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(workingHoursRaw) > 0 {
		if err := json.Unmarshal(workingHoursRaw, &res.WorkingHours); err != nil {
			return nil, fmt.Errorf("unmarshal working_hours: %v", err)
		}
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
