package create_order

import (
	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

// Item позиция заказа в запросе.
// Меню хранится вне сервиса, поэтому Name и Price принимаются от клиента как есть
// и не сверяются с каталогом; Total считается из этих цен.
type Item struct {
	MenuItemID string
	Name       string
	Price      float64 // цена клиента, проверяется только на >= 0
	Quantity   int
}

// Request модель запроса на создание заказа
type Request struct {
	CustomerID      string  // X-User-ID
	OrderType       string  // dine-in | takeaway | delivery | pre-order
	Items           []Item  // минимум одна позиция; цены не сверяются с меню
	DeliveryAddress *string // обязателен для delivery
	PreorderDate    *string // YYYY-MM-DD, только для pre-order; пусто = сегодня
	PreorderTime    *string // HH:MM, только для pre-order; пусто = 13:00
	Notes           *string
	PaymentProofURL *string
}

// Response созданный заказ
type Response struct {
	Order *domain.Order
}
