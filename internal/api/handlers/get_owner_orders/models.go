package get_owner_orders

import (
	"net/url"
	"strings"

	"github.com/m04kA/SMC-OrderingService/internal/service/orders/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Используется также выгрузкой в xlsx.
func ToServiceRequest(userID string, query url.Values) *models.ListOrdersRequest {
	return &models.ListOrdersRequest{
		UserID:     userID,
		CustomerID: strings.TrimSpace(query.Get("customerId")),
		Status:     strings.TrimSpace(query.Get("status")),
		Type:       strings.TrimSpace(query.Get("type")),
		From:       strings.TrimSpace(query.Get("from")),
		To:         strings.TrimSpace(query.Get("to")),
	}
}
