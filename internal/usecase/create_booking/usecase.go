package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/internal/service/constraints"
	"github.com/reservly/booking-engine/internal/service/matcher"
)

// UseCase use case для создания бронирования
//
// Подбор ресурса идет вне транзакции, но финальная проверка конфликта
// повторяется внутри сериализуемой транзакции по свежепрочитанным (FOR
// UPDATE) бронированиям: из двух одновременных запросов на одно окно
// ровно один получит бронирование, второй — конфликтное нарушение
type UseCase struct {
	bookingRepo  BookingRepository
	matcherSvc   MatcherService
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
	matcherSvc MatcherService,
	scheduleSvc ScheduleService,
	validator ConstraintValidator,
	recorder AuditRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		matcherSvc:   matcherSvc,
		scheduleSvc:  scheduleSvc,
		validator:    validator,
		recorder:     recorder,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%d, type=%s, date=%s, time=%s, party=%d",
		req.TenantID, req.RequestType, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Подбираем ресурс под запрос
	match, err := uc.matcherSvc.Match(ctx, &matcher.Request{
		TenantID:            req.TenantID,
		RequestType:         req.RequestType,
		Date:                req.Date,
		StartTime:           req.StartTime,
		DurationMinutes:     req.DurationMinutes,
		Tags:                req.Tags,
		PartySize:           req.PartySize,
		PreferredResourceID: req.PreferredResourceID,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: matching failed: %v", err)
		return nil, fmt.Errorf("%w: failed to match resources: %v", ErrInternal, err)
	}
	resource := match.Best()

	var (
		created *domain.Booking
		result  *domain.ValidationResult
	)

	// 4. Проверка правил и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		op := &constraints.Operation{
			Kind:                 constraints.OpCreate,
			Now:                  now,
			TenantID:             req.TenantID,
			Date:                 req.Date,
			StartTime:            req.StartTime,
			DurationMinutes:      req.DurationMinutes,
			PartySize:            req.PartySize,
			PreferredUnavailable: match.PreferredUnavailable,
			NoResourceAvailable:  resource == nil,
		}

		if resource != nil {
			op.Resource = resource

			// 4.1. Рабочее окно ресурса на дату
			window, err := uc.scheduleSvc.WorkingWindow(txCtx, resource, req.Date)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to resolve working window: %v", err)
				return fmt.Errorf("%w: failed to resolve working window: %v", ErrInternal, err)
			}
			op.Window = window

			// 4.2. Перечитываем активные бронирования ресурса с блокировкой
			// (FOR UPDATE): решение matcher'а вне транзакции могло устареть
			bookings, err := uc.bookingRepo.GetByResourceWithFilter(txCtx, domain.ResourceBookingsFilter{
				ResourceID: resource.ID,
				StartDate:  &req.Date,
				EndDate:    &req.Date,
			})
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}
			op.ActiveBookings = bookings
		}

		// 4.3. Прогоняем операцию через каталог правил тенанта
		res, err := uc.validator.Validate(txCtx, req.RequestType, op)
		if err != nil {
			uc.logger.Error("CreateBooking: constraint validation failed: %v", err)
			return fmt.Errorf("%w: failed to validate constraints: %v", ErrInternal, err)
		}
		result = res

		if !result.IsValid {
			uc.logger.Warn("CreateBooking: rejected with %d violation(s)", len(result.Violations))
			return constraints.NewValidationFailedError(result)
		}

		// 4.4. Создаем бронирование; буфер фиксируется на момент создания
		booking := &domain.Booking{
			Reference:       uuid.NewString(),
			TenantID:        req.TenantID,
			ResourceID:      resource.ID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			BufferMinutes:   resource.BufferMinutes,
			Status:          domain.StatusPending,
			PartySize:       req.PartySize,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			Notes:           req.Notes,
		}

		saved, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		created = saved
		return nil
	})

	// 5. Журнал операций пишется вне транзакции, в том числе для отказов
	uc.audit(ctx, req, created, result, err == nil)

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d reference=%s resource=%d",
		created.ID, created.Reference, created.ResourceID)

	return &Response{
		ID:              created.ID,
		Reference:       created.Reference,
		TenantID:        created.TenantID,
		ResourceID:      created.ResourceID,
		ResourceName:    resource.Name,
		BookingDate:     created.BookingDate,
		StartTime:       created.StartTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		PartySize:       created.PartySize,
		Warnings:        result.Warnings,
		CreatedAt:       created.CreatedAt,
	}, nil
}

func (uc *UseCase) audit(ctx context.Context, req *Request, created *domain.Booking, result *domain.ValidationResult, passed bool) {
	record := &domain.OperationAuditRecord{
		TenantID:  req.TenantID,
		Operation: domain.OpCreate,
		ActorRole: req.ActorRole,
		Payload: map[string]interface{}{
			"requestType":     req.RequestType,
			"date":            req.Date.Format(domain.DateFormat),
			"startTime":       req.StartTime.String(),
			"durationMinutes": req.DurationMinutes,
			"partySize":       req.PartySize,
		},
		Passed: passed,
	}
	if created != nil {
		record.BookingID = &created.ID
	}
	if result != nil {
		record.ConstraintsChecked = result.ConstraintsChecked
		record.Violations = result.Violations
		record.Warnings = result.Warnings
	}
	uc.recorder.Record(ctx, record)
}
