package match_resources

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	matchResources "github.com/reservly/booking-engine/internal/usecase/match_resources"
	"github.com/reservly/booking-engine/pkg/types"
)

// MatchResourcesRequest HTTP request model
type MatchResourcesRequest struct {
	TenantID            int64    `json:"tenantId"`
	RequestType         string   `json:"requestType"`
	Date                string   `json:"date"`      // "2026-09-15"
	StartTime           string   `json:"startTime"` // "19:00"
	DurationMinutes     int      `json:"durationMinutes"`
	PartySize           int      `json:"partySize,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	PreferredResourceID *int64   `json:"preferredResourceId,omitempty"`
}

// RankedResourceResponse один кандидат в HTTP ответе
type RankedResourceResponse struct {
	ResourceID int64   `json:"resourceId"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Preferred  bool    `json:"preferred,omitempty"`
}

// MatchResourcesResponse HTTP response model
type MatchResourcesResponse struct {
	Resources            []RankedResourceResponse `json:"resources"`
	PreferredUnavailable bool                     `json:"preferredUnavailable,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MatchResourcesRequest) ToUseCaseRequest() (*matchResources.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &matchResources.Request{
		TenantID:            r.TenantID,
		RequestType:         r.RequestType,
		Date:                date,
		StartTime:           startTime,
		DurationMinutes:     r.DurationMinutes,
		PartySize:           r.PartySize,
		Tags:                r.Tags,
		PreferredResourceID: r.PreferredResourceID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *matchResources.Response) *MatchResourcesResponse {
	resources := make([]RankedResourceResponse, 0, len(resp.Resources))
	for _, res := range resp.Resources {
		resources = append(resources, RankedResourceResponse{
			ResourceID: res.ResourceID,
			Name:       res.Name,
			Score:      res.Score,
			Preferred:  res.Preferred,
		})
	}

	return &MatchResourcesResponse{
		Resources:            resources,
		PreferredUnavailable: resp.PreferredUnavailable,
	}
}
