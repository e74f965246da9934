package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/reservly/booking-engine/internal/api/handlers"
	"github.com/reservly/booking-engine/internal/api/middleware"
	getBooking "github.com/reservly/booking-engine/internal/usecase/get_booking"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgForbidden        = "бронирование принадлежит другому тенанту"
)

type Handler struct {
	useCase GetBookingUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	tenantID := middleware.TenantID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getBooking.Request{
		TenantID:  tenantID,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBooking.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, getBooking.ErrForbidden):
			h.logger.Warn("GET /bookings/%d - Forbidden for tenant=%d", bookingID, tenantID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/%d - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
