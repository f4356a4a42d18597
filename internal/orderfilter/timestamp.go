package orderfilter

import "github.com/m04kA/SMC-OrderingService/internal/domain"

// OrderTimestamp resolves the creation time of an order in Unix milliseconds.
//
// CreationTime is set by the server on insert; records written before it
// existed only carry the legacy CreatedAt. A missing or zero value falls
// through to the next field, and an order with neither resolves to 0 so it
// sorts as the oldest.
func OrderTimestamp(o *domain.Order) float64 {
	if o == nil {
		return 0
	}
	if o.CreationTime != nil && *o.CreationTime != 0 {
		return *o.CreationTime
	}
	if o.CreatedAt != nil {
		return *o.CreatedAt
	}
	return 0
}
