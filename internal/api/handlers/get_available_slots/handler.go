package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/reservly/booking-engine/internal/api/handlers"
	"github.com/reservly/booking-engine/internal/domain"
	getAvailableSlots "github.com/reservly/booking-engine/internal/usecase/get_available_slots"
)

const (
	msgInvalidResourceID = "некорректный идентификатор ресурса"
	msgInvalidTenantID   = "некорректный параметр tenantId"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration   = "некорректный параметр durationMinutes"
	msgInvalidInput      = "некорректные параметры запроса"
	msgResourceNotFound  = "ресурс не найден"
	msgForbidden         = "ресурс принадлежит другому тенанту"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	query := r.URL.Query()

	tenantID, err := strconv.ParseInt(query.Get("tenantId"), 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var durationMinutes int
	if raw := query.Get("durationMinutes"); raw != "" {
		durationMinutes, err = strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	var granularityMinutes int
	if raw := query.Get("granularityMinutes"); raw != "" {
		granularityMinutes, err = strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		TenantID:           tenantID,
		ResourceID:         resourceID,
		Date:               date,
		DurationMinutes:    durationMinutes,
		GranularityMinutes: granularityMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrResourceNotFound):
			h.logger.Warn("GET /resources/%d/available-slots - Resource not found", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getAvailableSlots.ErrForbidden):
			h.logger.Warn("GET /resources/%d/available-slots - Forbidden for tenant=%d", resourceID, tenantID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /resources/%d/available-slots - Invalid input: %v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /resources/%d/available-slots - Failed: %v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
