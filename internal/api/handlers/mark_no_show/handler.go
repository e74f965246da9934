package mark_no_show

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/reservly/booking-engine/internal/api/handlers"
	"github.com/reservly/booking-engine/internal/api/middleware"
	markNoShow "github.com/reservly/booking-engine/internal/usecase/mark_no_show"
)

const (
	msgInvalidBookingID  = "некорректный идентификатор бронирования"
	msgBookingNotFound   = "бронирование не найдено"
	msgForbidden         = "бронирование принадлежит другому тенанту"
	msgInvalidTransition = "бронирование нельзя отметить как неявку в текущем статусе"
)

// StatusResponse HTTP response model
type StatusResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

type Handler struct {
	useCase MarkNoShowUseCase
	logger  Logger
}

func NewHandler(useCase MarkNoShowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/no-show
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	tenantID := middleware.TenantID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &markNoShow.Request{
		TenantID:  tenantID,
		BookingID: bookingID,
		ActorRole: middleware.ActorRole(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, markNoShow.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/no-show - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, markNoShow.ErrForbidden):
			h.logger.Warn("PATCH /bookings/%d/no-show - Forbidden for tenant=%d", bookingID, tenantID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, markNoShow.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%d/no-show - Invalid transition: %v", bookingID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/%d/no-show - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/no-show - Marked as no-show: tenant=%d", bookingID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, &StatusResponse{
		ID:        result.ID,
		Status:    result.Status,
		UpdatedAt: result.UpdatedAt.Format(time.RFC3339),
	})
}
