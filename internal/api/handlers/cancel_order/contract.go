package cancel_order

import (
	"context"

	"github.com/m04kA/SMC-OrderingService/internal/service/orders/models"
)

type OrderService interface {
	Cancel(ctx context.Context, orderID string, userID string) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
