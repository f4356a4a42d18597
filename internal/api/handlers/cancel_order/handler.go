package cancel_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OrderingService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderingService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders"
)

const (
	msgMissingOrderID = "отсутствует ID заказа"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgNotFound       = "заказ не найден"
	msgForbidden      = "доступ запрещен"
	msgCannotCancel   = "заказ не может быть отменен"
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

// Handle PATCH /api/v1/orders/{orderId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if orderID == "" {
		h.logger.Warn("PATCH /orders/{id}/cancel - Missing order ID")
		handlers.RespondBadRequest(w, msgMissingOrderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /orders/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	order, err := h.service.Cancel(r.Context(), orderID, userID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PATCH /orders/{id}/cancel - Order not found: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("PATCH /orders/{id}/cancel - Access denied: order_id=%s, user_id=%s", orderID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, orders.ErrCannotCancel):
			h.logger.Warn("PATCH /orders/{id}/cancel - Cannot cancel: order_id=%s", orderID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /orders/{id}/cancel - Failed to cancel order: order_id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /orders/{id}/cancel - Order cancelled successfully: order_id=%s, user_id=%s", orderID, userID)
	handlers.RespondJSON(w, http.StatusOK, order)
}
