package audit

import (
	"context"

	"github.com/reservly/booking-engine/internal/domain"
)

// AuditRepository интерфейс хранилища аудита
type AuditRepository interface {
	Append(ctx context.Context, record *domain.OperationAuditRecord) (*domain.OperationAuditRecord, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.OperationAuditRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Recorder пишет журнал операций жизненного цикла. Запись идет после
// коммита основной транзакции и не откатывает операцию при сбое:
// потерянная строка журнала хуже, чем откаченное бронирование, но не
// наоборот
type Recorder struct {
	repo   AuditRepository
	logger Logger
}

// NewRecorder создает новый экземпляр рекордера аудита
func NewRecorder(repo AuditRepository, logger Logger) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: logger,
	}
}

// Record добавляет запись журнала, сбой только логируется
func (r *Recorder) Record(ctx context.Context, record *domain.OperationAuditRecord) {
	if _, err := r.repo.Append(ctx, record); err != nil {
		r.logger.Error("Record: failed to append audit record for tenant=%d op=%s: %v",
			record.TenantID, record.Operation, err)
	}
}

// History возвращает журнал операций бронирования
func (r *Recorder) History(ctx context.Context, bookingID int64) ([]*domain.OperationAuditRecord, error) {
	return r.repo.ListByBooking(ctx, bookingID)
}
