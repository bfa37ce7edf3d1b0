package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/AbnerVital/7KDelivery/internal/adapters/out/postgres/orderrepo"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createDeliveryOrder(customerID kernel.UUID) *order.Order {
	location, err := kernel.NewGeoPoint(-23.5605, -46.6433)
	suite.Require().NoError(err)

	snapshot, err := order.NewAddressSnapshot(
		"Rua das Pizzas", "123", "Centro", "Sao Paulo", "01234-567", location)
	suite.Require().NoError(err)

	firstItem, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 35.90, 2, "extra cheese")
	suite.Require().NoError(err)
	secondItem, err := order.NewLineItem(kernel.NewUUID(), "Guarana", 8.00, 1, "")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), customerID,
		[]order.LineItem{firstItem, secondItem},
		order.Delivery, &snapshot, "pix", 7.50,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createPickupOrder(customerID kernel.UUID) *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), "Calabresa", 42.00, 1, "")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), customerID,
		[]order.LineItem{item},
		order.Pickup, nil, "cash", 0,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_DeliveryOrderRoundTrip() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	testOrder := suite.createDeliveryOrder(customerID)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(testOrder.ID().IsEqual(loaded.ID()))
	suite.True(customerID.IsEqual(loaded.CustomerID()))
	suite.Equal(order.Pending, loaded.Status())
	suite.InDelta(79.80, loaded.Subtotal(), 0.001)
	suite.InDelta(7.50, loaded.DeliveryFee(), 0.001)
	suite.Equal(order.Delivery, loaded.DeliveryType())

	items := loaded.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Margherita", items[0].ProductName())
	suite.Equal("extra cheese", items[0].Customization())

	suite.Require().NotNil(loaded.DeliveryAddress())
	suite.Equal("Rua das Pizzas", loaded.DeliveryAddress().Street())
	suite.InDelta(-23.5605, loaded.DeliveryAddress().Location().Latitude(), 0.000001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_PickupOrderHasNoAddress() {
	ctx := context.Background()
	testOrder := suite.createPickupOrder(kernel.NewUUID())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Nil(loaded.DeliveryAddress())
	suite.Zero(loaded.DeliveryFee())
	suite.Equal(order.Pickup, loaded.DeliveryType())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_PreservesLineItemSequence() {
	ctx := context.Background()

	names := []string{"Margherita", "Calabresa", "Quatro Queijos", "Portuguesa", "Guarana"}
	items := make([]order.LineItem, 0, len(names))
	for _, name := range names {
		item, err := order.NewLineItem(kernel.NewUUID(), name, 30.00, 1, "")
		suite.Require().NoError(err)
		items = append(items, item)
	}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), items, order.Pickup, nil, "pix", 0)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	loadedItems := loaded.Items()
	suite.Require().Len(loadedItems, len(names))
	for i, name := range names {
		suite.Equal(name, loadedItems[i].ProductName())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	testOrder := suite.createPickupOrder(kernel.NewUUID())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Confirmed))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	testOrder := suite.createPickupOrder(kernel.NewUUID())

	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_NewestFirst() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	otherCustomerID := kernel.NewUUID()

	first := suite.createPickupOrder(customerID)
	second := suite.createPickupOrder(customerID)
	foreign := suite.createPickupOrder(otherCustomerID)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	// Push the second order later in time so the ordering is deterministic.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET created_at = created_at + interval '1 hour' WHERE id = ?",
		second.ID().Bytes()).Error)

	orders, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	suite.True(second.ID().IsEqual(orders[0].ID()))
	suite.True(first.ID().IsEqual(orders[1].ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingOlderThan() {
	ctx := context.Background()
	stale := suite.createPickupOrder(kernel.NewUUID())
	fresh := suite.createPickupOrder(kernel.NewUUID())

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET created_at = created_at - interval '1 hour' WHERE id = ?",
		stale.ID().Bytes()).Error)

	orders, err := suite.repository.GetAllPendingOlderThan(ctx, time.Now().UTC().Add(-15*time.Minute))
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.True(stale.ID().IsEqual(orders[0].ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
