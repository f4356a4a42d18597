package create_order

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

// validateRequest проверяет запрос до обращения к расписанию и БД
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerID) == "" {
		return fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}

	orderType := domain.OrderType(req.OrderType)
	if !orderType.IsValid() {
		return fmt.Errorf("%w: unknown order type %q", ErrInvalidInput, req.OrderType)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}
	if len(req.Items) > domain.MaxOrderItems {
		return fmt.Errorf("%w: order can contain at most %d items", ErrInvalidInput, domain.MaxOrderItems)
	}
	for i, item := range req.Items {
		if strings.TrimSpace(item.MenuItemID) == "" || strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: items[%d] must have menuItemId and name", ErrInvalidInput, i)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: items[%d].price must not be negative", ErrInvalidInput, i)
		}
		if item.Quantity < 1 || item.Quantity > domain.MaxItemQuantity {
			return fmt.Errorf("%w: items[%d].quantity must be in 1..%d", ErrInvalidInput, i, domain.MaxItemQuantity)
		}
	}

	if orderType == domain.OrderTypeDelivery {
		if req.DeliveryAddress == nil || strings.TrimSpace(*req.DeliveryAddress) == "" {
			return fmt.Errorf("%w: delivery address is required for delivery orders", ErrInvalidInput)
		}
	}
	if req.DeliveryAddress != nil && len(*req.DeliveryAddress) > domain.MaxAddressLength {
		return fmt.Errorf("%w: delivery address exceeds %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}

	if orderType != domain.OrderTypePreOrder && (req.PreorderDate != nil || req.PreorderTime != nil) {
		return fmt.Errorf("%w: pre-order date and time are only allowed for pre-orders", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
