package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	scheduleRepo "github.com/reservly/booking-engine/internal/infra/storage/schedule"
	"github.com/reservly/booking-engine/pkg/types"
)

// Service разрешает рабочее окно ресурса на конкретную дату
// Сменное назначение на дату имеет приоритет над недельным расписанием;
// отсутствие окна означает, что ресурс в этот день не работает
type Service struct {
	shiftRepo ShiftRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(shiftRepo ShiftRepository, logger Logger) *Service {
	return &Service{
		shiftRepo: shiftRepo,
		logger:    logger,
	}
}

// WorkingWindow возвращает рабочее окно ресурса на дату или nil, если
// ресурс в этот день не работает
func (s *Service) WorkingWindow(ctx context.Context, resource *domain.BookableResource, date time.Time) (*domain.WorkingWindow, error) {
	// 1. Сменное назначение на конкретную дату имеет приоритет
	assignment, err := s.shiftRepo.GetByResourceAndDate(ctx, resource.ID, date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrAssignmentNotFound) {
		s.logger.Error("WorkingWindow: failed to get shift assignment for resource=%d date=%s: %v",
			resource.ID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get shift assignment: %v", ErrInternal, err)
	}

	if assignment != nil {
		s.logger.Info("WorkingWindow: resource=%d date=%s uses shift assignment id=%d",
			resource.ID, date.Format(domain.DateFormat), assignment.ID)
		return &domain.WorkingWindow{
			Start:  assignment.StartTime,
			End:    assignment.EndTime,
			Breaks: assignment.Breaks,
		}, nil
	}

	// 2. Недельное расписание ресурса
	day := resource.WorkingHours.ForWeekday(date.Weekday())
	if !day.IsOpen || day.Open == nil || day.Close == nil {
		return nil, nil
	}

	open, err := types.NewTimeStringFromString(*day.Open)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid weekday open time for resource=%d: %v", ErrInvalidSchedule, resource.ID, err)
	}
	closing, err := types.NewTimeStringFromString(*day.Close)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid weekday close time for resource=%d: %v", ErrInvalidSchedule, resource.ID, err)
	}

	return &domain.WorkingWindow{
		Start:  open,
		End:    closing,
		Breaks: day.Breaks,
	}, nil
}
