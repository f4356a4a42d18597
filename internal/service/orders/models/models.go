package models

import (
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/internal/orderfilter"
	"github.com/m04kA/SMC-OrderingService/internal/schedule"
)

// Request модели

// ListOrdersRequest фильтры списка заказов. Пустые строки означают "без фильтра".
type ListOrdersRequest struct {
	UserID     string `json:"-"`          // кто запрашивает
	CustomerID string `json:"customerId"` // чьи заказы; пусто = все (только владелец)
	Status     string `json:"status"`     // "all", "active" или конкретный статус
	Type       string `json:"type"`       // "all", "pre-order", "regular"
	From       string `json:"from"`       // YYYY-MM-DD
	To         string `json:"to"`         // YYYY-MM-DD
}

// UpdateStatusRequest смена статуса заказа владельцем
type UpdateStatusRequest struct {
	UserID       string  `json:"-"`
	OrderID      string  `json:"-"`
	Status       string  `json:"status"`
	DenialReason *string `json:"denialReason,omitempty"`
}

// Response модели

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

// OrderResponse ответ с данными заказа
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customerId"`
	OrderType  string              `json:"orderType"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
	Total      float64             `json:"total"`

	DeliveryAddress *string `json:"deliveryAddress,omitempty"`
	PreorderDate    *string `json:"preorderDate,omitempty"`
	PreorderTime    *string `json:"preorderTime,omitempty"`
	PreorderTime12h *string `json:"preorderTime12h,omitempty"` // "1:00 PM"
	Notes           *string `json:"notes,omitempty"`
	PaymentProofURL *string `json:"paymentProofUrl,omitempty"`
	DenialReason    *string `json:"denialReason,omitempty"`

	// Unix ms: CreationTime, либо legacy CreatedAt
	CreatedAt float64   `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderListResponse ответ со списком заказов
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// Методы конвертации

// FromDomainOrder конвертирует domain модель в DTO
func FromDomainOrder(o *domain.Order) *OrderResponse {
	if o == nil {
		return nil
	}

	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Subtotal:   item.Subtotal(),
		}
	}

	resp := &OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		OrderType:       string(o.OrderType),
		Status:          string(o.Status),
		Items:           items,
		Total:           o.Total,
		DeliveryAddress: o.DeliveryAddress,
		PreorderDate:    o.PreorderDate,
		PreorderTime:    o.PreorderTime,
		Notes:           o.Notes,
		PaymentProofURL: o.PaymentProofURL,
		DenialReason:    o.DenialReason,
		CreatedAt:       orderfilter.OrderTimestamp(o),
		UpdatedAt:       o.UpdatedAt,
	}

	if o.PreorderTime != nil {
		if formatted := schedule.FormatTime12h(*o.PreorderTime); formatted != "" {
			resp.PreorderTime12h = &formatted
		}
	}

	return resp
}

// FromDomainOrderList конвертирует список, сохраняя порядок
func FromDomainOrderList(orders []*domain.Order) *OrderListResponse {
	resp := &OrderListResponse{Orders: make([]OrderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, *FromDomainOrder(o))
	}
	return resp
}
