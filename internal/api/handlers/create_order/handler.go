package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OrderingService/internal/api/handlers"
	"github.com/m04kA/SMC-OrderingService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders/models"
	createOrder "github.com/m04kA/SMC-OrderingService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidPreorder    = "выбранные дата или время предзаказа недоступны"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /orders - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		var preorderErr *createOrder.PreorderError
		switch {
		case errors.As(err, &preorderErr):
			h.logger.Warn("POST /orders - Pre-order rejected: user_id=%s, %v", userID, err)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, PreorderErrorResponse{
				ErrorResponse: handlers.ErrorResponse{
					Code:    http.StatusUnprocessableEntity,
					Message: msgInvalidPreorder,
				},
				DateError: preorderErr.Date,
				TimeError: preorderErr.Time,
			})

		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid order: user_id=%s, %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /orders - Failed to create order: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order created: order_id=%s, user_id=%s, type=%s",
		result.Order.ID, userID, result.Order.OrderType)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainOrder(result.Order))
}
