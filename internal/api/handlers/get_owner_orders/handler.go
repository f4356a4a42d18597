package get_owner_orders

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OrderingService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderingService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ только для владельца"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owner/orders
// Query params: status, type, from, to, customerId (все необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /owner/orders - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetOwnerOrders(r.Context(), ToServiceRequest(userID, r.URL.Query()))
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("GET /owner/orders - Invalid filters: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("GET /owner/orders - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /owner/orders - Failed to get orders: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owner/orders - Orders retrieved successfully: user_id=%s, count=%d", userID, len(result.Orders))
	handlers.RespondJSON(w, http.StatusOK, result)
}
