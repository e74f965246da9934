package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/reservly/booking-engine/internal/api/handlers"
	"github.com/reservly/booking-engine/internal/api/middleware"
	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/internal/service/constraints"
	rescheduleBooking "github.com/reservly/booking-engine/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные параметры запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "бронирование принадлежит другому тенанту"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/reschedule - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tenantID := middleware.TenantID(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(tenantID, bookingID, middleware.ActorRole(r.Context()))
	if err != nil {
		h.logger.Warn("PATCH /bookings/%d/reschedule - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *constraints.ValidationFailedError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PATCH /bookings/%d/reschedule - Rejected by constraints: violations=%d",
				bookingID, len(validationErr.Result.Violations))
			handlers.RespondValidationResult(w, validationErr.Result)

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/reschedule - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrForbidden):
			h.logger.Warn("PATCH /bookings/%d/reschedule - Forbidden for tenant=%d", bookingID, tenantID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%d/reschedule - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/%d/reschedule - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/reschedule - Booking moved to %s %s",
		bookingID, result.BookingDate.Format(domain.DateFormat), result.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
