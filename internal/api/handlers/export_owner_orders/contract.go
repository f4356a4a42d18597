package export_owner_orders

import (
	"context"
	"io"

	"github.com/m04kA/SMC-OrderingService/internal/service/orders/models"
)

type OrderService interface {
	ExportOwnerOrders(ctx context.Context, req *models.ListOrdersRequest, out io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
