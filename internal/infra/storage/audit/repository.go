package audit

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

// Repository append-only репозиторий аудита lifecycle операций
// Записи никогда не обновляются и не удаляются
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория аудита
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись аудита
// Вызывается для каждой попытки lifecycle операции, включая отклонённые
func (r *Repository) Append(ctx context.Context, record *domain.OperationAuditRecord) (*domain.OperationAuditRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payloadRaw, err := json.Marshal(record.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - marshal payload: %v", ErrEncodePayload, err)
	}
	violationsRaw, err := json.Marshal(record.Violations)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - marshal violations: %v", ErrEncodePayload, err)
	}
	warningsRaw, err := json.Marshal(record.Warnings)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - marshal warnings: %v", ErrEncodePayload, err)
	}

	query, args, err := psqlbuilder.Insert("operation_audit_records").
		Columns(
			"booking_id",
			"tenant_id",
			"operation",
			"actor_role",
			"payload",
			"constraints_checked",
			"violations",
			"warnings",
			"passed",
		).
		Values(
			record.BookingID,
			record.TenantID,
			record.Operation,
			record.ActorRole,
			payloadRaw,
			record.ConstraintsChecked,
			violationsRaw,
			warningsRaw,
			record.Passed,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// ListByBooking получает записи аудита бронирования в порядке добавления
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.OperationAuditRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"tenant_id",
		"operation",
		"actor_role",
		"payload",
		"constraints_checked",
		"violations",
		"warnings",
		"passed",
		"created_at",
	).
		From("operation_audit_records").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.OperationAuditRecord, 0)
	for rows.Next() {
		var record domain.OperationAuditRecord
		var payloadRaw, violationsRaw, warningsRaw []byte
		var createdAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.BookingID,
			&record.TenantID,
			&record.Operation,
			&record.ActorRole,
			&payloadRaw,
			&record.ConstraintsChecked,
			&violationsRaw,
			&warningsRaw,
			&record.Passed,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}

		if len(payloadRaw) > 0 {
			if err := json.Unmarshal(payloadRaw, &record.Payload); err != nil {
				return nil, fmt.Errorf("%w: ListByBooking - unmarshal payload: %v", ErrScanRow, err)
			}
		}
		if len(violationsRaw) > 0 {
			if err := json.Unmarshal(violationsRaw, &record.Violations); err != nil {
				return nil, fmt.Errorf("%w: ListByBooking - unmarshal violations: %v", ErrScanRow, err)
			}
		}
		if len(warningsRaw) > 0 {
			if err := json.Unmarshal(warningsRaw, &record.Warnings); err != nil {
				return nil, fmt.Errorf("%w: ListByBooking - unmarshal warnings: %v", ErrScanRow, err)
			}
		}

		record.CreatedAt = createdAt.Time

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
