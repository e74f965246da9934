package match_resources

import (
	"errors"
	"net/http"

	"github.com/reservly/booking-engine/internal/api/handlers"
	matchResources "github.com/reservly/booking-engine/internal/usecase/match_resources"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase MatchResourcesUseCase
	logger  Logger
}

func NewHandler(useCase MatchResourcesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources/match
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MatchResourcesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources/match - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /resources/match - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, matchResources.ErrInvalidInput):
			h.logger.Warn("POST /resources/match - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /resources/match - Failed: tenant=%d, error=%v", req.TenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources/match - Matched %d resource(s) for tenant=%d",
		len(result.Resources), req.TenantID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
