package domain

import "time"

// OrderType is the fulfilment mode chosen at checkout
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePreOrder OrderType = "pre-order"
)

// IsValid reports whether the order type is one of the known values
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery, OrderTypePreOrder:
		return true
	}
	return false
}

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusDenied    OrderStatus = "denied"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a denormalized menu line captured at checkout
type OrderItem struct {
	MenuItemID string
	Name       string
	Price      float64
	Quantity   int
}

// Subtotal returns price multiplied by quantity
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order represents a customer order.
//
// Two creation timestamps exist because of a storage migration: CreationTime is
// assigned by the server on insert, CreatedAt is the legacy client-provided
// value kept on older records. Both are Unix milliseconds.
type Order struct {
	ID         string
	CustomerID string
	OrderType  OrderType
	Status     OrderStatus
	Items      []OrderItem
	Total      float64

	DeliveryAddress *string
	PreorderDate    *string // YYYY-MM-DD
	PreorderTime    *string // HH:MM, 24h
	Notes           *string
	PaymentProofURL *string
	DenialReason    *string

	CreationTime *float64
	CreatedAt    *float64

	UpdatedAt time.Time
}

// IsPreOrder returns true for scheduled orders
func (o *Order) IsPreOrder() bool {
	return o.OrderType == OrderTypePreOrder
}

// IsActive returns true while the order is not in a terminal state
func (o *Order) IsActive() bool {
	return o.Status.IsActive()
}

// CanBeDecided returns true if the owner can still accept or deny the order
func (o *Order) CanBeDecided() bool {
	return o.Status == StatusPending
}

// CanBeCancelled returns true if the customer may still cancel the order
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending
}

// CalculateTotal sums item subtotals
func (o *Order) CalculateTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

// IsActive returns true for non-terminal statuses
func (s OrderStatus) IsActive() bool {
	return !s.IsTerminal()
}

// IsTerminal returns true for statuses no transition leads out of
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDenied || s == StatusCompleted || s == StatusCancelled
}

// IsValid reports whether the status is one of the known values
func (s OrderStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// CanTransitionTo checks the owner-driven status workflow
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusAccepted, StatusDenied, StatusCancelled},
	StatusAccepted:  {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusCompleted},
}

// OrdersQuery coarse index lookup passed to the persistence layer.
// Fine-grained filtering happens in memory afterwards.
type OrdersQuery struct {
	CustomerID *string      // index by customer
	Status     *OrderStatus // index by status (+ creation time)
	Since      *time.Time   // lower bound on creation time
}
