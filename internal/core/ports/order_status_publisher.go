package ports

import (
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
)

// OrderStatusPublisher notifies subscribed clients about an order status
// change. Implementations deliver best effort; callers treat failures as
// non-fatal since the persisted transition is the source of truth.
type OrderStatusPublisher interface {
	PublishOrderStatus(orderID kernel.UUID, status order.Status, at time.Time) error
}
