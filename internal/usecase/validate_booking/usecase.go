package validate_booking

import (
	"context"
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/internal/service/constraints"
	"github.com/reservly/booking-engine/internal/service/matcher"
)

// UseCase use case для предварительной проверки запроса на бронирование
//
// Выполняет тот же набор проверок, что и создание, но без транзакции и
// блокировок: результат носит справочный характер и может устареть к
// моменту реального создания
type UseCase struct {
	bookingRepo  BookingRepository
	matcherSvc   MatcherService
	scheduleSvc  ScheduleService
	validator    ConstraintValidator
	recorder     AuditRecorder
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
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		matcherSvc:   matcherSvc,
		scheduleSvc:  scheduleSvc,
		validator:    validator,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateBooking: tenant=%d, type=%s, date=%s, time=%s, party=%d",
		req.TenantID, req.RequestType, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Подбираем ресурс так же, как это сделало бы создание
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
		uc.logger.Error("ValidateBooking: matching failed: %v", err)
		return nil, fmt.Errorf("%w: failed to match resources: %v", ErrInternal, err)
	}
	resource := match.Best()

	// 4. Собираем снимок операции
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

		window, err := uc.scheduleSvc.WorkingWindow(ctx, resource, req.Date)
		if err != nil {
			uc.logger.Error("ValidateBooking: failed to resolve working window: %v", err)
			return nil, fmt.Errorf("%w: failed to resolve working window: %v", ErrInternal, err)
		}
		op.Window = window

		bookings, err := uc.bookingRepo.GetByResourceWithFilter(ctx, domain.ResourceBookingsFilter{
			ResourceID: resource.ID,
			StartDate:  &req.Date,
			EndDate:    &req.Date,
		})
		if err != nil {
			uc.logger.Error("ValidateBooking: failed to get bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		op.ActiveBookings = bookings
	}

	// 5. Прогоняем через каталог правил
	result, err := uc.validator.Validate(ctx, req.RequestType, op)
	if err != nil {
		uc.logger.Error("ValidateBooking: constraint validation failed: %v", err)
		return nil, fmt.Errorf("%w: failed to validate constraints: %v", ErrInternal, err)
	}

	// 6. Проверка тоже попадает в журнал операций
	uc.recorder.Record(ctx, &domain.OperationAuditRecord{
		TenantID:  req.TenantID,
		Operation: domain.OpValidate,
		ActorRole: req.ActorRole,
		Payload: map[string]interface{}{
			"requestType":     req.RequestType,
			"date":            req.Date.Format(domain.DateFormat),
			"startTime":       req.StartTime.String(),
			"durationMinutes": req.DurationMinutes,
			"partySize":       req.PartySize,
		},
		ConstraintsChecked: result.ConstraintsChecked,
		Violations:         result.Violations,
		Warnings:           result.Warnings,
		Passed:             result.IsValid,
	})

	resp := &Response{Result: result}
	if resource != nil {
		resp.MatchedResourceID = &resource.ID
	}

	uc.logger.Info("ValidateBooking: tenant=%d isValid=%v violations=%d warnings=%d checked=%d",
		req.TenantID, result.IsValid, len(result.Violations), len(result.Warnings), result.ConstraintsChecked)

	return resp, nil
}
