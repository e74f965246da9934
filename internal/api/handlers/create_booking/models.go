package create_booking

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	createBooking "github.com/reservly/booking-engine/internal/usecase/create_booking"
	"github.com/reservly/booking-engine/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RequestType         string   `json:"requestType"`
	Date                string   `json:"date"`      // "2026-09-15"
	StartTime           string   `json:"startTime"` // "19:00"
	DurationMinutes     int      `json:"durationMinutes"`
	PartySize           int      `json:"partySize,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	PreferredResourceID *int64   `json:"preferredResourceId,omitempty"`
	CustomerName        string   `json:"customerName"`
	CustomerPhone       string   `json:"customerPhone"`
	Notes               *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64              `json:"id"`
	Reference       string             `json:"reference"`
	TenantID        int64              `json:"tenantId"`
	ResourceID      int64              `json:"resourceId"`
	ResourceName    string             `json:"resourceName"`
	BookingDate     string             `json:"bookingDate"`
	StartTime       string             `json:"startTime"`
	DurationMinutes int                `json:"durationMinutes"`
	Status          string             `json:"status"`
	PartySize       int                `json:"partySize,omitempty"`
	Warnings        []domain.Violation `json:"warnings,omitempty"`
	CreatedAt       string             `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(tenantID int64, actor domain.ActorRole) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TenantID:            tenantID,
		RequestType:         r.RequestType,
		Date:                date,
		StartTime:           startTime,
		DurationMinutes:     r.DurationMinutes,
		PartySize:           r.PartySize,
		Tags:                r.Tags,
		PreferredResourceID: r.PreferredResourceID,
		CustomerName:        r.CustomerName,
		CustomerPhone:       r.CustomerPhone,
		Notes:               r.Notes,
		ActorRole:           actor,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		TenantID:        resp.TenantID,
		ResourceID:      resp.ResourceID,
		ResourceName:    resp.ResourceName,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		PartySize:       resp.PartySize,
		Warnings:        resp.Warnings,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
