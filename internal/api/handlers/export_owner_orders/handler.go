package export_owner_orders

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/api/handlers"
	getOwnerOrders "github.com/m04kA/SMC-OrderingService/internal/api/handlers/get_owner_orders"
	"github.com/m04kA/SMC-OrderingService/internal/api/middleware"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ только для владельца"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	service OrderService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/owner/orders/export
// Фильтры те же, что у GET /owner/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /owner/orders/export - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Пишем в буфер: при ошибке ещё можно ответить JSON
	var buf bytes.Buffer
	err := h.service.ExportOwnerOrders(r.Context(), getOwnerOrders.ToServiceRequest(userID, r.URL.Query()), &buf)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("GET /owner/orders/export - Invalid filters: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("GET /owner/orders/export - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /owner/orders/export - Failed to export orders: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", h.now().Format("20060102-150405"))
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("GET /owner/orders/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /owner/orders/export - Orders exported: user_id=%s, file=%s", userID, filename)
}
