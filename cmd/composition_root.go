package cmd

import (
	"log/slog"

	"github.com/AbnerVital/7KDelivery/internal/adapters/out/postgres"
	"github.com/AbnerVital/7KDelivery/internal/core/application/usecases/commands"
	"github.com/AbnerVital/7KDelivery/internal/core/application/usecases/queries"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/services"
	"github.com/AbnerVital/7KDelivery/internal/core/ports"
	"github.com/AbnerVital/7KDelivery/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into command and query handlers. The status
// publisher and cache may be nil; handlers treat both as optional.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	pricer      services.DeliveryPricer
	publisher   ports.OrderStatusPublisher
	statusCache ports.OrderStatusCache
	logger      *slog.Logger
	config      Config
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.OrderStatusPublisher,
	statusCache ports.OrderStatusCache,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricer:      services.NewDeliveryPricer(),
		publisher:   publisher,
		statusCache: statusCache,
		logger:      logger,
		config:      config,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.pricer, c.statusCache, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher, c.statusCache, c.logger)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateAddressCommandHandler() commands.CreateAddressCommandHandler {
	return commands.NewCreateAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAddressCommandHandler() commands.DeleteAddressCommandHandler {
	return commands.NewDeleteAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateSettingsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB, c.statusCache, c.logger)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAddressesQueryHandler() queries.ListAddressesQueryHandler {
	return queries.NewListAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculateDeliveryQuoteQueryHandler() queries.CalculateDeliveryQuoteQueryHandler {
	return queries.NewCalculateDeliveryQuoteQueryHandler(c.gormDB, c.pricer)
}

// CreateStaleOrderWatchdog builds the pending order watchdog. The repository
// it gets runs outside any transaction; the job only reads.
func (c *CompositionRoot) CreateStaleOrderWatchdog() *jobs.StaleOrderWatchdog {
	orderRepo := c.uowFactory.Create().OrderRepository()
	return jobs.NewStaleOrderWatchdog(orderRepo, c.config.StaleOrderAge, c.logger)
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
