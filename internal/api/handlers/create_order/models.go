package create_order

import (
	"github.com/m04kA/SMC-OrderingService/internal/api/handlers"
	createOrder "github.com/m04kA/SMC-OrderingService/internal/usecase/create_order"
)

// OrderItemRequest позиция меню в заказе
type OrderItemRequest struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	OrderType       string             `json:"orderType"`
	Items           []OrderItemRequest `json:"items"`
	DeliveryAddress *string            `json:"deliveryAddress,omitempty"`
	PreorderDate    *string            `json:"preorderDate,omitempty"` // "2025-10-15"
	PreorderTime    *string            `json:"preorderTime,omitempty"` // "13:00"
	Notes           *string            `json:"notes,omitempty"`
	PaymentProofURL *string            `json:"paymentProofUrl,omitempty"`
}

// PreorderErrorResponse ответ 422 с сообщениями по полям предзаказа
type PreorderErrorResponse struct {
	handlers.ErrorResponse
	DateError string `json:"dateError,omitempty"`
	TimeError string `json:"timeError,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest(customerID string) *createOrder.Request {
	items := make([]createOrder.Item, len(r.Items))
	for i, item := range r.Items {
		items[i] = createOrder.Item{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}

	return &createOrder.Request{
		CustomerID:      customerID,
		OrderType:       r.OrderType,
		Items:           items,
		DeliveryAddress: r.DeliveryAddress,
		PreorderDate:    r.PreorderDate,
		PreorderTime:    r.PreorderTime,
		Notes:           r.Notes,
		PaymentProofURL: r.PaymentProofURL,
	}
}
