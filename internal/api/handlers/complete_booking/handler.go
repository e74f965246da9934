package complete_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/reservly/booking-engine/internal/api/handlers"
	"github.com/reservly/booking-engine/internal/api/middleware"
	completeBooking "github.com/reservly/booking-engine/internal/usecase/complete_booking"
)

const (
	msgInvalidBookingID  = "некорректный идентификатор бронирования"
	msgBookingNotFound   = "бронирование не найдено"
	msgForbidden         = "бронирование принадлежит другому тенанту"
	msgInvalidTransition = "бронирование нельзя завершить в текущем статусе"
)

// StatusResponse HTTP response model
type StatusResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

type Handler struct {
	useCase CompleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase CompleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	tenantID := middleware.TenantID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &completeBooking.Request{
		TenantID:  tenantID,
		BookingID: bookingID,
		ActorRole: middleware.ActorRole(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, completeBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/complete - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, completeBooking.ErrForbidden):
			h.logger.Warn("PATCH /bookings/%d/complete - Forbidden for tenant=%d", bookingID, tenantID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, completeBooking.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%d/complete - Invalid transition: %v", bookingID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/%d/complete - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/complete - Booking completed: tenant=%d", bookingID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, &StatusResponse{
		ID:        result.ID,
		Status:    result.Status,
		UpdatedAt: result.UpdatedAt.Format(time.RFC3339),
	})
}
