package ports

import (
	"context"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
)

// OrderStatusCache is a fast read path for order status polling. It is an
// optimization only: a miss or a cache failure always falls back to storage.
type OrderStatusCache interface {
	// SetStatus stores the current status of an order.
	SetStatus(ctx context.Context, orderID kernel.UUID, status order.Status) error

	// GetStatus retrieves a cached status. The second return value reports
	// whether the cache held a value.
	GetStatus(ctx context.Context, orderID kernel.UUID) (order.Status, bool, error)
}
