package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/reservly/booking-engine/internal/api/handlers"
	"github.com/reservly/booking-engine/internal/api/middleware"
	"github.com/reservly/booking-engine/internal/service/constraints"
	cancelBooking "github.com/reservly/booking-engine/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidInput       = "некорректные параметры запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "бронирование принадлежит другому тенанту"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/cancel - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tenantID := middleware.TenantID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		TenantID:  tenantID,
		BookingID: bookingID,
		Reason:    req.Reason,
		ActorRole: middleware.ActorRole(r.Context()),
	})
	if err != nil {
		var validationErr *constraints.ValidationFailedError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PATCH /bookings/%d/cancel - Rejected by constraints: violations=%d",
				bookingID, len(validationErr.Result.Violations))
			handlers.RespondValidationResult(w, validationErr.Result)

		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/cancel - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrForbidden):
			h.logger.Warn("PATCH /bookings/%d/cancel - Forbidden for tenant=%d", bookingID, tenantID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%d/cancel - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/%d/cancel - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/cancel - Booking cancelled: tenant=%d", bookingID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
