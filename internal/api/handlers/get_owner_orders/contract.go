package get_owner_orders

import (
	"context"

	"github.com/m04kA/SMC-OrderingService/internal/service/orders/models"
)

type OrderService interface {
	GetOwnerOrders(ctx context.Context, req *models.ListOrdersRequest) (*models.OrderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
