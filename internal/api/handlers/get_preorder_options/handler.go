package get_preorder_options

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OrderingService/internal/api/handlers"
	getPreorderOptions "github.com/m04kA/SMC-OrderingService/internal/usecase/get_preorder_options"
)

type Handler struct {
	useCase GetPreorderOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetPreorderOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/preorder/options
// Query params: date (YYYY-MM-DD), hour (01..12), minute (00..59), period (AM|PM); все необязательные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ToUseCaseRequest(r.URL.Query())

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getPreorderOptions.ErrInvalidInput):
			h.logger.Warn("GET /preorder/options - Invalid params: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /preorder/options - Failed to build options: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
