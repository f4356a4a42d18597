package get_customer_orders

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OrderingService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderingService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/orders
// Query params: status, type, from, to (все необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["userId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/orders - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetCustomerOrders(r.Context(), ToServiceRequest(userID, customerID, r.URL.Query()))
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/orders - Invalid filters: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/orders - Access denied: customer_id=%s, user_id=%s", customerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /users/{userId}/orders - Failed to get orders: customer_id=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/orders - Orders retrieved successfully: customer_id=%s, count=%d",
		customerID, len(result.Orders))
	handlers.RespondJSON(w, http.StatusOK, result)
}
