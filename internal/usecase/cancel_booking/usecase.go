package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
	bookingStorage "github.com/reservly/booking-engine/internal/infra/storage/booking"
	"github.com/reservly/booking-engine/internal/service/constraints"
)

// UseCase use case для отмены бронирования
//
// Отмена никогда не удаляет строку: это переход статуса с сохранением
// истории. Политика уведомления об отмене по умолчанию не блокирует, а
// аннотирует финансовые последствия; тенант может сделать ее блокирующей
// через переопределение правила
type UseCase struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	validator    ConstraintValidator
	recorder     AuditRecorder
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	validator ConstraintValidator,
	recorder AuditRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		validator:    validator,
		recorder:     recorder,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: tenant=%d, booking=%d", req.TenantID, req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		booking *domain.Booking
		result  *domain.ValidationResult
	)

	// 2. Проверка правил и переход статуса в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем бронирование с блокировкой (FOR UPDATE)
		found, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingStorage.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		if found.TenantID != req.TenantID {
			uc.logger.Warn("CancelBooking: booking id=%d belongs to tenant=%d, requested by tenant=%d",
				req.BookingID, found.TenantID, req.TenantID)
			return ErrForbidden
		}
		booking = found

		// 2.2. Вертикаль для каталога правил берется из типа ресурса
		resource, err := uc.resourceRepo.GetByID(txCtx, booking.ResourceID)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to get resource id=%d: %v", booking.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		// 2.3. Прогоняем отмену через каталог правил
		res, err := uc.validator.Validate(txCtx, resource.ResourceType, &constraints.Operation{
			Kind:     constraints.OpCancel,
			Now:      now,
			TenantID: req.TenantID,
			Resource: resource,
			Target:   booking,
		})
		if err != nil {
			uc.logger.Error("CancelBooking: constraint validation failed: %v", err)
			return fmt.Errorf("%w: failed to validate constraints: %v", ErrInternal, err)
		}
		result = res

		if !result.IsValid {
			uc.logger.Warn("CancelBooking: rejected with %d violation(s)", len(result.Violations))
			return constraints.NewValidationFailedError(result)
		}

		// 2.4. Переход статуса
		if err := uc.bookingRepo.Cancel(txCtx, req.BookingID, req.Reason); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		return nil
	})

	// 3. Журнал операций пишется вне транзакции, в том числе для отказов
	uc.audit(ctx, req, booking, result, err == nil)

	if err != nil {
		return nil, err
	}

	cancelledAt := now
	uc.logger.Info("CancelBooking: booking id=%d cancelled", req.BookingID)

	return &Response{
		ID:          req.BookingID,
		Status:      string(domain.StatusCancelled),
		CancelledAt: &cancelledAt,
		Warnings:    result.Warnings,
	}, nil
}

func (uc *UseCase) audit(ctx context.Context, req *Request, booking *domain.Booking, result *domain.ValidationResult, passed bool) {
	record := &domain.OperationAuditRecord{
		TenantID:  req.TenantID,
		Operation: domain.OpCancel,
		ActorRole: req.ActorRole,
		Payload: map[string]interface{}{
			"reason": req.Reason,
		},
		Passed: passed,
	}
	if booking != nil {
		record.BookingID = &booking.ID
	}
	if result != nil {
		record.ConstraintsChecked = result.ConstraintsChecked
		record.Violations = result.Violations
		record.Warnings = result.Warnings
	}
	uc.recorder.Record(ctx, record)
}
