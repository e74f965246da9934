package reschedule_booking

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	rescheduleBooking "github.com/reservly/booking-engine/internal/usecase/reschedule_booking"
	"github.com/reservly/booking-engine/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate      string `json:"newDate"`      // "2026-09-16"
	NewStartTime string `json:"newStartTime"` // "18:00"

	// 0 = сохранить текущую длительность
	NewDurationMinutes int `json:"newDurationMinutes,omitempty"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	ID              int64              `json:"id"`
	BookingDate     string             `json:"bookingDate"`
	StartTime       string             `json:"startTime"`
	DurationMinutes int                `json:"durationMinutes"`
	Status          string             `json:"status"`
	Warnings        []domain.Violation `json:"warnings,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(tenantID, bookingID int64, actor domain.ActorRole) (*rescheduleBooking.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		TenantID:           tenantID,
		BookingID:          bookingID,
		NewDate:            newDate,
		NewStartTime:       newStartTime,
		NewDurationMinutes: r.NewDurationMinutes,
		ActorRole:          actor,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		ID:              resp.ID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Warnings:        resp.Warnings,
	}
}
