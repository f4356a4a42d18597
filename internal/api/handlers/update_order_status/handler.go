package update_order_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OrderingService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderingService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders"
)

const (
	msgMissingOrderID     = "отсутствует ID заказа"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "заказ не найден"
	msgForbidden          = "доступ только для владельца"
	msgInvalidTransition  = "недопустимый переход статуса"
	msgStatusConflict     = "статус заказа уже изменен, обновите данные"
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

// Handle PATCH /api/v1/owner/orders/{orderId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if orderID == "" {
		h.logger.Warn("PATCH /owner/orders/{id}/status - Missing order ID")
		handlers.RespondBadRequest(w, msgMissingOrderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /owner/orders/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /owner/orders/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), req.ToServiceRequest(userID, orderID))
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PATCH /owner/orders/{id}/status - Order not found: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("PATCH /owner/orders/{id}/status - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("PATCH /owner/orders/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, orders.ErrInvalidTransition):
			h.logger.Warn("PATCH /owner/orders/{id}/status - Invalid transition: order_id=%s, %v", orderID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, orders.ErrStatusConflict):
			h.logger.Warn("PATCH /owner/orders/{id}/status - Concurrent update: order_id=%s", orderID)
			handlers.RespondConflict(w, msgStatusConflict)

		default:
			h.logger.Error("PATCH /owner/orders/{id}/status - Failed to update status: order_id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /owner/orders/{id}/status - Status updated: order_id=%s, status=%s, user_id=%s",
		orderID, order.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, order)
}
