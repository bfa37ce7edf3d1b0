package queries

import (
	"context"
	"errors"
	"log/slog"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/core/ports"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler serves status lookups through a cache with a
// database fallback. Cache errors are logged and treated as misses; the
// database remains the source of truth.
type GetOrderStatusQueryHandler struct {
	db          *gorm.DB
	statusCache ports.OrderStatusCache
	logger      *slog.Logger
}

// NewGetOrderStatusQueryHandler creates a handler for status lookups.
// statusCache may be nil; every lookup then goes to the database.
func NewGetOrderStatusQueryHandler(db *gorm.DB, statusCache ports.OrderStatusCache, logger *slog.Logger) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db, statusCache: statusCache, logger: logger}
}

// Handle resolves the status, preferring the cache. On a miss the database
// value is returned and written back to the cache best effort.
func (h GetOrderStatusQueryHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (OrderStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatusResponse{}, err
	}

	if h.statusCache != nil {
		status, found, err := h.statusCache.GetStatus(ctx, query.OrderID())
		if err != nil {
			if h.logger != nil {
				h.logger.Warn("order status cache read failed",
					slog.String("orderId", query.OrderID().String()),
					slog.Any("error", err))
			}
		} else if found {
			return OrderStatusResponse{OrderID: query.OrderID().String(), Status: status.String()}, nil
		}
	}

	var statusValue int
	err := h.db.WithContext(ctx).
		Model(&orderRow{}).
		Select("status").
		Where("id = ?", query.OrderID().Bytes()).
		First(&statusValue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderStatusResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderStatusResponse{}, err
	}

	status := order.Status(statusValue)
	if h.statusCache != nil {
		if err = h.statusCache.SetStatus(ctx, query.OrderID(), status); err != nil && h.logger != nil {
			h.logger.Warn("order status cache write failed",
				slog.String("orderId", query.OrderID().String()),
				slog.Any("error", err))
		}
	}

	return OrderStatusResponse{OrderID: query.OrderID().String(), Status: status.String()}, nil
}
