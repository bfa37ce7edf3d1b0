package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies an order status transition and
// fans the result out to subscribed clients.
//
// The transition is the transaction; the fan-out is not. Once the new status
// is committed, publish and cache failures are logged and swallowed so a
// broken websocket hub or Redis node can never fail an admin's update.
type ChangeOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	publisher   ports.OrderStatusPublisher
	statusCache ports.OrderStatusCache
	logger      *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status updates.
// publisher and statusCache may be nil when fan-out or caching is disabled.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderStatusPublisher,
	statusCache ports.OrderStatusCache,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		publisher:   publisher,
		statusCache: statusCache,
		logger:      logger,
	}
}

// Handle loads the order, applies the transition through the aggregate's
// state machine, persists it, then notifies subscribers best effort.
// An illegal transition surfaces as order.InvalidTransitionError and leaves
// the stored status untouched.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notify(ctx, aggregate)
	return aggregate, nil
}

func (h *ChangeOrderStatusCommandHandler) notify(ctx context.Context, o *order.Order) {
	if h.publisher != nil {
		if err := h.publisher.PublishOrderStatus(o.ID(), o.Status(), time.Now().UTC()); err != nil {
			h.logWarn("failed to publish order status update", o, err)
		}
	}

	if h.statusCache != nil {
		if err := h.statusCache.SetStatus(ctx, o.ID(), o.Status()); err != nil {
			h.logWarn("failed to refresh order status cache", o, err)
		}
	}
}

func (h *ChangeOrderStatusCommandHandler) logWarn(msg string, o *order.Order, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Warn(msg,
		slog.String("orderId", o.ID().String()),
		slog.String("status", o.Status().String()),
		slog.Any("error", err))
}
