// Package rediscache implements the order status cache on Redis. Cached
// values expire after a short TTL; the database stays the source of truth
// and every miss falls through to it.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

const (
	// keyOrderStatus is the cache key pattern: order_status:{order_id} -> status name.
	keyOrderStatus = "order_status:%s"

	// ttlStatusCache bounds staleness if a cache refresh is ever missed.
	ttlStatusCache = 5 * time.Minute
)

// New creates a Redis client for the given address.
func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// OrderStatusCache implements ports.OrderStatusCache on Redis.
type OrderStatusCache struct {
	rdb *redis.Client
}

// NewOrderStatusCache creates an order status cache backed by rdb.
func NewOrderStatusCache(rdb *redis.Client) *OrderStatusCache {
	return &OrderStatusCache{rdb: rdb}
}

// SetStatus stores the current status under the order's key.
func (c *OrderStatusCache) SetStatus(ctx context.Context, orderID kernel.UUID, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	key := fmt.Sprintf(keyOrderStatus, orderID.String())
	return c.rdb.Set(ctx, key, status.String(), ttlStatusCache).Err()
}

// GetStatus retrieves a cached status. A missing key is a miss, not an error.
func (c *OrderStatusCache) GetStatus(ctx context.Context, orderID kernel.UUID) (order.Status, bool, error) {
	key := fmt.Sprintf(keyOrderStatus, orderID.String())
	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return order.Unknown, false, nil
		}
		return order.Unknown, false, err
	}

	status, err := order.StatusFromString(value)
	if err != nil {
		// A corrupt value is treated as a miss so the database wins.
		return order.Unknown, false, nil
	}

	return status, true, nil
}
