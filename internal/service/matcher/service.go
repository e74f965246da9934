package matcher

import (
	"context"
	"fmt"
	"sort"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/internal/service/slots"
)

// Service подбирает ресурс под запрос бронирования
//
// Порядок подбора:
//  1. фильтр по статусу и специализациям
//  2. доступность: рабочее окно покрывает запрошенное время, дневной лимит
//     назначений не исчерпан, нет конфликта с активными бронированиями
//  3. предпочитаемый ресурс возвращается первым, если всё ещё подходит
//  4. остальные ранжируются детерминированным взвешенным скорингом
//
// Один параметризованный matcher обслуживает все вертикали — веса скоринга
// фиксированы для каждого типа запроса
type Service struct {
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	scheduleSvc  ScheduleService
	logger       Logger
}

// NewService создает новый экземпляр matcher
func NewService(
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	scheduleSvc ScheduleService,
	logger Logger,
) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		scheduleSvc:  scheduleSvc,
		logger:       logger,
	}
}

// Match возвращает ранжированный список подходящих ресурсов
func (s *Service) Match(ctx context.Context, req *Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	resources, err := s.resourceRepo.ListByTenantAndType(ctx, req.TenantID, req.RequestType)
	if err != nil {
		s.logger.Error("Match: failed to list resources for tenant=%d type=%s: %v",
			req.TenantID, req.RequestType, err)
		return nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	startMin, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	endMin := startMin + req.DurationMinutes

	result := &Result{Ranked: make([]domain.RankedResource, 0)}
	var preferred *domain.BookableResource
	preferredRequested := req.PreferredResourceID != nil

	for _, res := range resources {
		eligible, err := s.isEligible(ctx, res, req, startMin, endMin)
		if err != nil {
			return nil, err
		}
		if !eligible {
			continue
		}

		if preferredRequested && res.ID == *req.PreferredResourceID {
			preferred = res
			continue
		}

		result.Ranked = append(result.Ranked, domain.RankedResource{
			Resource: res,
			Score:    Score(res, domain.WeightsForRequestType(req.RequestType)),
		})
	}

	// Детерминированное ранжирование: по убыванию скора, при равенстве —
	// по возрастанию ID
	sort.SliceStable(result.Ranked, func(i, j int) bool {
		if result.Ranked[i].Score != result.Ranked[j].Score {
			return result.Ranked[i].Score > result.Ranked[j].Score
		}
		return result.Ranked[i].Resource.ID < result.Ranked[j].Resource.ID
	})

	// Предпочитаемый ресурс, прошедший фильтры, встаёт во главу списка
	if preferred != nil {
		result.Ranked = append([]domain.RankedResource{{
			Resource:  preferred,
			Score:     Score(preferred, domain.WeightsForRequestType(req.RequestType)),
			Preferred: true,
		}}, result.Ranked...)
	} else if preferredRequested {
		// Недоступность предпочитаемого ресурса — предупреждение, не отказ
		result.PreferredUnavailable = true
	}

	s.logger.Info("Match: tenant=%d type=%s date=%s time=%s -> %d eligible (preferredUnavailable=%v)",
		req.TenantID, req.RequestType, req.Date.Format(domain.DateFormat), req.StartTime,
		len(result.Ranked), result.PreferredUnavailable)

	return result, nil
}

// isEligible проверяет ресурс по шагам 1-2: фильтр и доступность
func (s *Service) isEligible(ctx context.Context, res *domain.BookableResource, req *Request, startMin, endMin int) (bool, error) {
	// Шаг 1: статус и специализации
	if !res.IsActive() {
		return false, nil
	}
	if len(req.Tags) > 0 && !res.HasAnyTag(req.Tags) {
		return false, nil
	}
	if req.PartySize > 0 && (req.PartySize < res.MinCapacity || req.PartySize > res.MaxCapacity) {
		return false, nil
	}

	// Шаг 2: рабочее окно покрывает запрошенное время
	window, err := s.scheduleSvc.WorkingWindow(ctx, res, req.Date)
	if err != nil {
		return false, fmt.Errorf("%w: failed to resolve working window: %v", ErrInternal, err)
	}
	if window == nil || !window.Covers(startMin, endMin) {
		return false, nil
	}
	if window.IntersectsBreak(startMin, endMin) {
		return false, nil
	}

	// Активные бронирования на дату: лимит назначений и конфликт окна
	bookings, err := s.bookingRepo.GetByResourceWithFilter(ctx, domain.ResourceBookingsFilter{
		ResourceID: res.ID,
		StartDate:  &req.Date,
		EndDate:    &req.Date,
	})
	if err != nil {
		return false, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if res.MaxDailyAssignments > 0 && len(bookings) >= res.MaxDailyAssignments {
		return false, nil
	}

	if slots.ConflictExists(bookings, startMin, endMin, res.BufferMinutes) {
		return false, nil
	}

	return true, nil
}

func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}
	if req.RequestType == "" {
		return fmt.Errorf("%w: requestType is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	return nil
}
