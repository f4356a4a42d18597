package update_order_status

import (
	"github.com/m04kA/SMC-OrderingService/internal/service/orders/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status       string  `json:"status"`
	DenialReason *string `json:"denialReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID, orderID string) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID:       userID,
		OrderID:      orderID,
		Status:       r.Status,
		DenialReason: r.DenialReason,
	}
}
