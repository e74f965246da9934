package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
	bookingStorage "github.com/reservly/booking-engine/internal/infra/storage/booking"
	"github.com/reservly/booking-engine/internal/service/constraints"
)

// UseCase use case для переноса бронирования на новое окно
//
// Перенос атомарен: бронирование никогда не существует в промежуточном
// "отменено, но не пересоздано" состоянии. Новое окно проверяется теми
// же правилами доступности и времени, что и создание; при любом
// нарушении исходное бронирование остается нетронутым
type UseCase struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	scheduleSvc  ScheduleService
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
	scheduleSvc ScheduleService,
	validator ConstraintValidator,
	recorder AuditRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		scheduleSvc:  scheduleSvc,
		validator:    validator,
		recorder:     recorder,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: tenant=%d, booking=%d, newDate=%s, newTime=%s",
		req.TenantID, req.BookingID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		booking  *domain.Booking
		result   *domain.ValidationResult
		duration int
	)

	// 2. Проверка правил и перенос в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем бронирование с блокировкой (FOR UPDATE)
		found, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingStorage.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		if found.TenantID != req.TenantID {
			uc.logger.Warn("RescheduleBooking: booking id=%d belongs to tenant=%d, requested by tenant=%d",
				req.BookingID, found.TenantID, req.TenantID)
			return ErrForbidden
		}
		booking = found

		duration = req.NewDurationMinutes
		if duration == 0 {
			duration = booking.DurationMinutes
		}

		// 2.2. Ресурс и его рабочее окно на новую дату
		resource, err := uc.resourceRepo.GetByID(txCtx, booking.ResourceID)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get resource id=%d: %v", booking.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		window, err := uc.scheduleSvc.WorkingWindow(txCtx, resource, req.NewDate)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to resolve working window: %v", err)
			return fmt.Errorf("%w: failed to resolve working window: %v", ErrInternal, err)
		}

		// 2.3. Активные бронирования на новую дату с блокировкой, без
		// самого переносимого: оно не конфликтует само с собой
		bookings, err := uc.bookingRepo.GetByResourceWithFilter(txCtx, domain.ResourceBookingsFilter{
			ResourceID: booking.ResourceID,
			StartDate:  &req.NewDate,
			EndDate:    &req.NewDate,
			ExcludeID:  &booking.ID,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 2.4. Новое окно проверяется как создание плюс правила переноса
		res, err := uc.validator.Validate(txCtx, resource.ResourceType, &constraints.Operation{
			Kind:            constraints.OpReschedule,
			Now:             now,
			TenantID:        req.TenantID,
			Resource:        resource,
			Window:          window,
			Date:            req.NewDate,
			StartTime:       req.NewStartTime,
			DurationMinutes: duration,
			PartySize:       booking.PartySize,
			ActiveBookings:  bookings,
			Target:          booking,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: constraint validation failed: %v", err)
			return fmt.Errorf("%w: failed to validate constraints: %v", ErrInternal, err)
		}
		result = res

		if !result.IsValid {
			uc.logger.Warn("RescheduleBooking: rejected with %d violation(s)", len(result.Violations))
			return constraints.NewValidationFailedError(result)
		}

		// 2.5. Одно UPDATE: бронирование переезжает целиком или никак
		if err := uc.bookingRepo.Reschedule(txCtx, req.BookingID, req.NewDate, req.NewStartTime, duration); err != nil {
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		return nil
	})

	// 3. Журнал операций пишется вне транзакции, в том числе для отказов
	uc.audit(ctx, req, booking, result, err == nil)

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%d moved to %s %s",
		req.BookingID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	return &Response{
		ID:              req.BookingID,
		BookingDate:     req.NewDate,
		StartTime:       req.NewStartTime,
		DurationMinutes: duration,
		Status:          string(domain.StatusPending),
		Warnings:        result.Warnings,
	}, nil
}

func (uc *UseCase) audit(ctx context.Context, req *Request, booking *domain.Booking, result *domain.ValidationResult, passed bool) {
	record := &domain.OperationAuditRecord{
		TenantID:  req.TenantID,
		Operation: domain.OpReschedule,
		ActorRole: req.ActorRole,
		Payload: map[string]interface{}{
			"newDate":      req.NewDate.Format(domain.DateFormat),
			"newStartTime": req.NewStartTime.String(),
		},
		Passed: passed,
	}
	if booking != nil {
		record.BookingID = &booking.ID
		record.Payload["previousDate"] = booking.BookingDate.Format(domain.DateFormat)
		record.Payload["previousStartTime"] = booking.StartTime.String()
	}
	if result != nil {
		record.ConstraintsChecked = result.ConstraintsChecked
		record.Violations = result.Violations
		record.Warnings = result.Warnings
	}
	uc.recorder.Record(ctx, record)
}
