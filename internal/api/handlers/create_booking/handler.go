package create_booking

import (
	"errors"
	"net/http"

	"github.com/reservly/booking-engine/internal/api/handlers"
	"github.com/reservly/booking-engine/internal/api/middleware"
	"github.com/reservly/booking-engine/internal/service/constraints"
	createBooking "github.com/reservly/booking-engine/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tenantID := middleware.TenantID(r.Context())
	actor := middleware.ActorRole(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(tenantID, actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *constraints.ValidationFailedError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Rejected by constraints: tenant=%d, violations=%d",
				tenantID, len(validationErr.Result.Violations))
			handlers.RespondValidationResult(w, validationErr.Result)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: tenant=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, tenant=%d, resource=%d",
		result.ID, tenantID, result.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
