package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
	resourceStorage "github.com/reservly/booking-engine/internal/infra/storage/resource"
)

// UseCase use case для получения слотов ресурса на день
//
// Слоты всегда считаются на лету из расписания и активных бронирований,
// без кеширования: отмена или перенос немедленно возвращают окно в выдачу
type UseCase struct {
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	scheduleSvc  ScheduleService
	generator    SlotGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	scheduleSvc ScheduleService,
	generator SlotGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		scheduleSvc:  scheduleSvc,
		generator:    generator,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%d, resource=%d, date=%s",
		req.TenantID, req.ResourceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресурс и проверяем принадлежность тенанту
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceStorage.ErrResourceNotFound) {
			uc.logger.Warn("GetAvailableSlots: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}
	if resource.TenantID != req.TenantID {
		uc.logger.Warn("GetAvailableSlots: resource id=%d belongs to tenant=%d, requested by tenant=%d",
			req.ResourceID, resource.TenantID, req.TenantID)
		return nil, ErrForbidden
	}

	// 3. Разрешаем рабочее окно на дату
	window, err := uc.scheduleSvc.WorkingWindow(ctx, resource, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve working window: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve working window: %v", ErrInternal, err)
	}
	if window == nil {
		uc.logger.Info("GetAvailableSlots: resource id=%d does not work on %s",
			req.ResourceID, req.Date.Format(domain.DateFormat))
		return &Response{
			ResourceID:   req.ResourceID,
			Date:         req.Date,
			Slots:        []SlotView{},
			WorksThisDay: false,
		}, nil
	}

	// 4. Активные бронирования ресурса на дату
	bookings, err := uc.bookingRepo.GetByResourceWithFilter(ctx, domain.ResourceBookingsFilter{
		ResourceID: req.ResourceID,
		StartDate:  &req.Date,
		EndDate:    &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Генерируем сетку слотов
	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}
	granularity := req.GranularityMinutes
	if granularity == 0 {
		granularity = domain.DefaultGranularityMinutes
	}

	slots, err := uc.generator.Generate(window, duration, granularity, resource.BufferMinutes, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, SlotView{
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
			Status:          slot.Status,
		})
	}

	uc.logger.Info("GetAvailableSlots: resource=%d date=%s -> %d slots",
		req.ResourceID, req.Date.Format(domain.DateFormat), len(views))

	return &Response{
		ResourceID:   req.ResourceID,
		Date:         req.Date,
		Slots:        views,
		WorksThisDay: true,
	}, nil
}
