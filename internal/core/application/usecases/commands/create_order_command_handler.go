package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/services"
	"github.com/AbnerVital/7KDelivery/internal/core/ports"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler handles checkout: it validates the cart against
// the catalog, prices the order server-side, and persists it in PENDING
// status. Catalog reads and the order write share one transaction, so a
// concurrent price or availability edit cannot slip between validation and
// persistence.
type CreateOrderCommandHandler struct {
	uowFactory  CheckoutUoWFactory
	pricer      services.DeliveryPricer
	statusCache ports.OrderStatusCache
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// statusCache may be nil; priming the status cache on create is optional.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	pricer services.DeliveryPricer,
	statusCache ports.OrderStatusCache,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		pricer:      pricer,
		statusCache: statusCache,
		logger:      logger,
	}
}

// Handle processes the checkout command and returns the created order.
//
// Client-submitted prices never exist in the command; every line item is
// priced from the catalog row read inside the transaction. Any missing or
// unavailable product fails the whole checkout with ProductUnavailableError,
// and a subtotal below the configured minimum fails with
// MinimumOrderNotMetError. Nothing is persisted on failure.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	lineItems, err := h.buildLineItems(ctx, uow.ProductRepository(), cmd.Items())
	if err != nil {
		return nil, err
	}

	storeSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	subtotal := 0.0
	for _, item := range lineItems {
		subtotal += item.Total()
	}
	if subtotal < storeSettings.MinimumOrder() {
		return nil, NewMinimumOrderNotMetError(storeSettings.MinimumOrder(), subtotal)
	}

	deliveryFee := 0.0
	if cmd.DeliveryType() == order.Delivery {
		storeLocation, configured := storeSettings.StoreLocation()
		if !configured {
			return nil, services.ErrStoreLocationNotConfigured
		}

		quote, quoteErr := h.pricer.Quote(storeLocation, cmd.DeliveryAddress().Location(), services.Tariff{
			RatePerKm:  storeSettings.DeliveryFeePerKm(),
			MinimumFee: storeSettings.MinimumDeliveryFee(),
		})
		if quoteErr != nil {
			return nil, quoteErr
		}
		deliveryFee = quote.Fee
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), lineItems,
		cmd.DeliveryType(), cmd.DeliveryAddress(), cmd.PaymentMethod(), deliveryFee,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.primeStatusCache(ctx, newOrder)
	return newOrder, nil
}

func (h *CreateOrderCommandHandler) buildLineItems(
	ctx context.Context,
	products ports.ProductRepository,
	inputs []OrderItemInput,
) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, 0, len(inputs))
	for _, input := range inputs {
		catalogProduct, err := products.Get(ctx, input.ProductID)
		if err != nil {
			// Only a missing catalog row is the customer's problem; storage
			// failures must not masquerade as unavailability.
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, NewProductUnavailableError(input.ProductID)
			}
			return nil, err
		}
		if catalogProduct == nil || !catalogProduct.IsAvailable() {
			return nil, NewProductUnavailableError(input.ProductID)
		}

		lineItem, err := order.NewLineItem(
			catalogProduct.ID(), catalogProduct.Name(), catalogProduct.Price(),
			input.Quantity, input.Customization,
		)
		if err != nil {
			return nil, err
		}

		lineItems = append(lineItems, lineItem)
	}

	return lineItems, nil
}

func (h *CreateOrderCommandHandler) primeStatusCache(ctx context.Context, o *order.Order) {
	if h.statusCache == nil {
		return
	}
	if err := h.statusCache.SetStatus(ctx, o.ID(), o.Status()); err != nil && h.logger != nil {
		h.logger.Warn("failed to prime order status cache",
			slog.String("orderId", o.ID().String()),
			slog.Any("error", err))
	}
}
