package match_resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/internal/service/matcher"
)

// UseCase use case для подбора ресурса под запрос бронирования
type UseCase struct {
	matcherSvc MatcherService
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(matcherSvc MatcherService, logger Logger) *UseCase {
	return &UseCase{
		matcherSvc: matcherSvc,
		logger:     logger,
	}
}

// Execute выполняет use case подбора ресурсов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MatchResources: tenant=%d, type=%s, date=%s, time=%s, party=%d",
		req.TenantID, req.RequestType, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	result, err := uc.matcherSvc.Match(ctx, &matcher.Request{
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
		if errors.Is(err, matcher.ErrInvalidInput) {
			uc.logger.Warn("MatchResources: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("MatchResources: matching failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	views := make([]RankedResourceView, 0, len(result.Ranked))
	for _, ranked := range result.Ranked {
		views = append(views, RankedResourceView{
			ResourceID: ranked.Resource.ID,
			Name:       ranked.Resource.Name,
			Score:      ranked.Score,
			Preferred:  ranked.Preferred,
		})
	}

	return &Response{
		Resources:            views,
		PreferredUnavailable: result.PreferredUnavailable,
	}, nil
}
