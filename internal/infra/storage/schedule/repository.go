package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/dbmetrics"
	"github.com/reservly/booking-engine/pkg/psqlbuilder"
)

// Repository репозиторий сменных назначений (shift assignments)
// Назначение на конкретную дату имеет приоритет над недельным расписанием ресурса
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByResourceAndDate получает назначение смены ресурса на дату
// Возвращает ErrAssignmentNotFound, если на эту дату назначения нет
func (r *Repository) GetByResourceAndDate(ctx context.Context, resourceID int64, date time.Time) (*domain.ShiftAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"resource_id",
		"shift_date",
		"start_time",
		"end_time",
		"breaks",
		"created_at",
	).
		From("shift_assignments").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"shift_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByResourceAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var assignment domain.ShiftAssignment
	var breaksRaw []byte
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&assignment.ID,
		&assignment.ResourceID,
		&assignment.ShiftDate,
		&assignment.StartTime,
		&assignment.EndTime,
		&breaksRaw,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResourceAndDate - scan assignment: %v", ErrScanRow, err)
	}

	if len(breaksRaw) > 0 {
		if err := json.Unmarshal(breaksRaw, &assignment.Breaks); err != nil {
			return nil, fmt.Errorf("%w: GetByResourceAndDate - unmarshal breaks: %v", ErrScanRow, err)
		}
	}

	assignment.CreatedAt = createdAt.Time

	return &assignment, nil
}
