package orders

import (
	"context"
	"io"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, q domain.OrdersQuery) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus, denialReason *string) error
	Cancel(ctx context.Context, id string) error
}

// OwnerChecker определяет владельца ресторана по идентификатору пользователя
type OwnerChecker interface {
	IsOwner(userID string) bool
}

// OrdersExporter выгрузка заказов в файл
type OrdersExporter interface {
	Write(out io.Writer, orders []*domain.Order) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
