package get_preorder_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-OrderingService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/preorder/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /preorder/schedule - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /preorder/schedule - Schedule retrieved: restrictions=%t, dates=%d",
		schedule.RestrictionsEnabled, len(schedule.Dates))
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
