package commands_test

import (
	"errors"
	"testing"

	"github.com/AbnerVital/7KDelivery/internal/core/application/usecases/commands"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/product"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/settings"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/services"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogProduct(t *testing.T, id kernel.UUID, name string, price float64, available bool) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, name, "", price, "pizzas", "", available)
	require.NoError(t, err)
	return p
}

func storeSettingsWithMinimum(t *testing.T, minimumOrder float64) *settings.StoreSettings {
	t.Helper()
	location, err := kernel.NewGeoPoint(settings.DefaultStoreLatitude, settings.DefaultStoreLongitude)
	require.NoError(t, err)
	s, err := settings.RestoreStoreSettings(minimumOrder, 5.00, 0, &location, "", "", "", "")
	require.NoError(t, err)
	return s
}

func newCheckoutHandler(factory *MockCheckoutUoWFactory) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(factory, services.NewDeliveryPricer(), nil, nil)
}

func TestCreateOrderCommandHandler_Handle_DeliverySuccess(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 2}},
		order.Delivery, deliveryAddress(t), "pix")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	settingsRepo := new(MockSettingsRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(catalogProduct(t, productID, "Margherita", 35.90, true), nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(storeSettingsWithMinimum(t, 20.00), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, created.Status())
	assert.InDelta(t, 71.80, created.Subtotal(), 0.001)
	assert.Greater(t, created.DeliveryFee(), 0.0)
	items := created.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita", items[0].ProductName())
	assert.InDelta(t, 35.90, items[0].UnitPrice(), 0.001)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PickupSkipsFee(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 1}},
		order.Pickup, nil, "cash")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	settingsRepo := new(MockSettingsRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	// Store coordinates unset: a pickup checkout must not need them.
	noLocation, restoreErr := settings.RestoreStoreSettings(20.00, 5.00, 0, nil, "", "", "", "")
	require.NoError(t, restoreErr)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(catalogProduct(t, productID, "Calabresa", 42.00, true), nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(noLocation, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, created.DeliveryFee())
	assert.Nil(t, created.DeliveryAddress())
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnavailableProduct(t *testing.T) {
	ctx := t.Context()
	availableID := kernel.NewUUID()
	unavailableID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{
			{ProductID: availableID, Quantity: 1},
			{ProductID: unavailableID, Quantity: 1},
		},
		order.Pickup, nil, "pix")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, availableID).
			Return(catalogProduct(t, availableID, "Margherita", 35.90, true), nil).Once(),
		productRepo.On("Get", mock.Anything, unavailableID).
			Return(catalogProduct(t, unavailableID, "Quatro Queijos", 44.90, false), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrProductUnavailable)
	var unavailableErr *commands.ProductUnavailableError
	require.ErrorAs(t, err, &unavailableErr)
	assert.True(t, unavailableID.IsEqual(unavailableErr.ProductID))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MissingProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 1}},
		order.Pickup, nil, "pix")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(nil, errs.NewObjectNotFoundError("product", productID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrProductUnavailable)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CatalogReadFailure(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 1}},
		order.Pickup, nil, "pix")
	require.NoError(t, err)

	storageErr := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(nil, storageErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	_, err = h.Handle(ctx, cmd)

	// A storage outage is not an unavailable product; the raw error must
	// surface so it maps to an internal failure upstream.
	require.ErrorIs(t, err, storageErr)
	require.NotErrorIs(t, err, commands.ErrProductUnavailable)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MinimumOrderNotMet(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 1}},
		order.Pickup, nil, "pix")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	settingsRepo := new(MockSettingsRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(catalogProduct(t, productID, "Guarana", 8.00, true), nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(storeSettingsWithMinimum(t, 20.00), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrMinimumOrderNotMet)
	var minimumErr *commands.MinimumOrderNotMetError
	require.ErrorAs(t, err, &minimumErr)
	assert.InDelta(t, 20.00, minimumErr.Minimum, 0.001)
	assert.InDelta(t, 8.00, minimumErr.Subtotal, 0.001)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_StoreLocationNotConfigured(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 1}},
		order.Delivery, deliveryAddress(t), "pix")
	require.NoError(t, err)

	noLocation, restoreErr := settings.RestoreStoreSettings(20.00, 5.00, 0, nil, "", "", "", "")
	require.NoError(t, restoreErr)

	productRepo := new(MockProductRepository)
	settingsRepo := new(MockSettingsRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(catalogProduct(t, productID, "Margherita", 35.90, true), nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(noLocation, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrStoreLocationNotConfigured)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 1}},
		order.Pickup, nil, "pix")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	settingsRepo := new(MockSettingsRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(catalogProduct(t, productID, "Margherita", 35.90, true), nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(storeSettingsWithMinimum(t, 20.00), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockCheckoutUoWFactory)
	h := newCheckoutHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
