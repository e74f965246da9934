package get_available_slots

import (
	"github.com/reservly/booking-engine/internal/domain"
	getAvailableSlots "github.com/reservly/booking-engine/internal/usecase/get_available_slots"
)

// SlotResponse один слот в HTTP ответе
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	ResourceID   int64          `json:"resourceId"`
	Date         string         `json:"date"`
	WorksThisDay bool           `json:"worksThisDay"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Status:          string(slot.Status),
		})
	}

	return &SlotsResponse{
		ResourceID:   resp.ResourceID,
		Date:         resp.Date.Format(domain.DateFormat),
		WorksThisDay: resp.WorksThisDay,
		Slots:        slots,
	}
}
