// Package http exposes the storefront over a JSON API. Handlers translate
// requests into commands and queries; all pricing and validation stays in the
// application layer.
package http

import (
	"net/http"

	"github.com/AbnerVital/7KDelivery/internal/core/application/usecases/commands"
	"github.com/AbnerVital/7KDelivery/internal/core/application/usecases/queries"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// statusStreamer upgrades a request to a realtime status stream.
type statusStreamer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler
	createAddressHandler     commands.CreateAddressCommandHandler
	deleteAddressHandler     commands.DeleteAddressCommandHandler
	updateSettingsHandler    commands.UpdateSettingsCommandHandler

	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getOrderStatusHandler queries.GetOrderStatusQueryHandler
	listProductsHandler   queries.ListProductsQueryHandler
	listAddressesHandler  queries.ListAddressesQueryHandler
	getSettingsHandler    queries.GetSettingsQueryHandler
	deliveryQuoteHandler  queries.CalculateDeliveryQuoteQueryHandler

	authMiddleware *AuthMiddleware
	streamer       statusStreamer
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	createAddressHandler commands.CreateAddressCommandHandler,
	deleteAddressHandler commands.DeleteAddressCommandHandler,
	updateSettingsHandler commands.UpdateSettingsCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
	listAddressesHandler queries.ListAddressesQueryHandler,
	getSettingsHandler queries.GetSettingsQueryHandler,
	deliveryQuoteHandler queries.CalculateDeliveryQuoteQueryHandler,
	authMiddleware *AuthMiddleware,
	streamer statusStreamer,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		deleteProductHandler:     deleteProductHandler,
		createAddressHandler:     createAddressHandler,
		deleteAddressHandler:     deleteAddressHandler,
		updateSettingsHandler:    updateSettingsHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getOrderStatusHandler:    getOrderStatusHandler,
		listProductsHandler:      listProductsHandler,
		listAddressesHandler:     listAddressesHandler,
		getSettingsHandler:       getSettingsHandler,
		deliveryQuoteHandler:     deliveryQuoteHandler,
		authMiddleware:           authMiddleware,
		streamer:                 streamer,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder, s.authMiddleware.RequireCustomer)
	api.GET("/orders", s.GetOrders, s.authMiddleware.RequireAuthenticated)
	api.GET("/orders/:id", s.GetOrder, s.authMiddleware.RequireAuthenticated)
	api.GET("/orders/:id/status", s.GetOrderStatus)
	api.PUT("/orders/:id", s.ChangeOrderStatus, s.authMiddleware.RequireAdmin)

	api.POST("/delivery/calculate", s.CalculateDelivery)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct, s.authMiddleware.RequireAdmin)
	api.PUT("/products/:id", s.UpdateProduct, s.authMiddleware.RequireAdmin)
	api.DELETE("/products/:id", s.DeleteProduct, s.authMiddleware.RequireAdmin)

	api.GET("/addresses", s.GetAddresses, s.authMiddleware.RequireCustomer)
	api.POST("/addresses", s.CreateAddress, s.authMiddleware.RequireCustomer)
	api.DELETE("/addresses/:id", s.DeleteAddress, s.authMiddleware.RequireCustomer)

	api.GET("/settings", s.GetSettings)
	api.PUT("/settings", s.UpdateSettings, s.authMiddleware.RequireAdmin)

	e.GET("/ws", s.UpgradeWS)
	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/orders. The submitted cart carries product ids
// and quantities only; prices come from the catalog inside the checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	claims, _ := claimsFrom(ctx)
	customerID, err := kernel.UUIDFromString(claims.SubjectID)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer identity")
	}

	var body createOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return respondBadRequest(ctx, "invalid product id: "+item.ProductID)
		}
		items = append(items, commands.OrderItemInput{
			ProductID:     productID,
			Quantity:      item.Quantity,
			Customization: item.Customization,
		})
	}

	deliveryType, err := order.DeliveryTypeFromString(body.DeliveryType)
	if err != nil {
		return respondBadRequest(ctx, "invalid delivery type")
	}

	var snapshot *order.AddressSnapshot
	if body.DeliveryAddress != nil {
		built, err := buildAddressSnapshot(*body.DeliveryAddress)
		if err != nil {
			return respondError(ctx, err)
		}
		snapshot = &built
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, items, deliveryType, snapshot, body.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderAggregateToJSON(created))
}

// GetOrders handles GET /api/orders. Customers see their own orders, admins
// see everything.
func (s *Server) GetOrders(ctx echo.Context) error {
	claims, _ := claimsFrom(ctx)

	var query queries.GetOrdersQuery
	if claims.Role == auth.RoleAdmin {
		query = queries.NewGetAllOrdersQuery()
	} else {
		customerID, err := kernel.UUIDFromString(claims.SubjectID)
		if err != nil {
			return respondBadRequest(ctx, "invalid customer identity")
		}
		query, err = queries.NewGetOrdersQueryForCustomer(customerID)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	views, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderJSON, 0, len(views))
	for _, view := range views {
		response = append(response, toOrderJSON(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id. Customers may only read their own
// orders.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	claims, _ := claimsFrom(ctx)
	if claims.Role != auth.RoleAdmin && view.CustomerID != claims.SubjectID {
		return ctx.JSON(http.StatusUnauthorized, errorJSON{Error: "order belongs to another customer"})
	}

	return ctx.JSON(http.StatusOK, toOrderJSON(view))
}

// GetOrderStatus handles GET /api/orders/:id/status, the polling counterpart
// of the WebSocket stream.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderStatusJSON{OrderID: view.OrderID, Status: view.Status})
}

// ChangeOrderStatus handles PUT /api/orders/:id.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var body changeOrderStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return respondBadRequest(ctx, "invalid status: "+body.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderAggregateToJSON(updated))
}

// CalculateDelivery handles POST /api/delivery/calculate, quoting a fee
// without creating anything.
func (s *Server) CalculateDelivery(ctx echo.Context) error {
	var body calculateDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	destination, err := kernel.NewGeoPoint(body.DeliveryAddress.Lat, body.DeliveryAddress.Lng)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewCalculateDeliveryQuoteQuery(destination)
	if err != nil {
		return respondError(ctx, err)
	}

	quote, err := s.deliveryQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryQuoteJSON{
		DeliveryFee:       quote.DeliveryFee,
		DistanceKm:        quote.DistanceKm,
		CalculationMethod: quote.CalculationMethod,
	})
}

// GetProducts handles GET /api/products. Anonymous callers and customers see
// available products only; admins also see hidden ones.
func (s *Server) GetProducts(ctx echo.Context) error {
	availableOnly := true
	if claims, ok := s.authMiddleware.optionalClaims(ctx); ok && claims.Role == auth.RoleAdmin {
		availableOnly = false
	}

	views, err := s.listProductsHandler.Handle(
		ctx.Request().Context(), queries.NewListProductsQuery(availableOnly))
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]productJSON, 0, len(views))
	for _, view := range views {
		response = append(response, toProductJSON(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body productRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), body.Name, body.Description, body.Price, body.Category, body.ImageURL)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productAggregateToJSON(created))
}

// UpdateProduct handles PUT /api/products/:id. Edits never touch line item
// snapshots on existing orders.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid product id")
	}

	var body productRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	available := true
	if body.Available != nil {
		available = *body.Available
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, body.Name, body.Description, body.Price, body.Category, body.ImageURL, available)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productAggregateToJSON(updated))
}

// DeleteProduct handles DELETE /api/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAddresses handles GET /api/addresses.
func (s *Server) GetAddresses(ctx echo.Context) error {
	claims, _ := claimsFrom(ctx)
	customerID, err := kernel.UUIDFromString(claims.SubjectID)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer identity")
	}

	query, err := queries.NewListAddressesQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.listAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]addressJSON, 0, len(views))
	for _, view := range views {
		response = append(response, toAddressJSON(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAddress handles POST /api/addresses.
func (s *Server) CreateAddress(ctx echo.Context) error {
	claims, _ := claimsFrom(ctx)
	customerID, err := kernel.UUIDFromString(claims.SubjectID)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer identity")
	}

	var body addressRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	location, err := kernel.NewGeoPoint(body.Lat, body.Lng)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateAddressCommand(
		kernel.NewUUID(), customerID,
		body.Street, body.Number, body.Neighborhood, body.City, body.ZipCode,
		location)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, addressAggregateToJSON(created))
}

// DeleteAddress handles DELETE /api/addresses/:id. Order address snapshots
// are unaffected.
func (s *Server) DeleteAddress(ctx echo.Context) error {
	claims, _ := claimsFrom(ctx)
	customerID, err := kernel.UUIDFromString(claims.SubjectID)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer identity")
	}

	addressID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid address id")
	}

	cmd, err := commands.NewDeleteAddressCommand(addressID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSettings handles GET /api/settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	view, err := s.getSettingsHandler.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSettingsJSON(view))
}

// UpdateSettings handles PUT /api/settings.
func (s *Server) UpdateSettings(ctx echo.Context) error {
	var body updateSettingsRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var storeLocation *kernel.GeoPoint
	if body.StoreLat != nil || body.StoreLng != nil {
		if body.StoreLat == nil || body.StoreLng == nil {
			return respondBadRequest(ctx, "storeLat and storeLng must be provided together")
		}
		built, err := kernel.NewGeoPoint(*body.StoreLat, *body.StoreLng)
		if err != nil {
			return respondError(ctx, err)
		}
		storeLocation = &built
	}

	cmd, err := commands.NewUpdateSettingsCommand(
		body.MinimumOrder, body.DeliveryFeePerKm, body.MinimumDeliveryFee,
		storeLocation,
		body.StoreAddress, body.Phone, body.Whatsapp, body.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateSettingsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, settingsAggregateToJSON(updated))
}

// UpgradeWS handles GET /ws.
func (s *Server) UpgradeWS(ctx echo.Context) error {
	return s.streamer.ServeWS(ctx.Response(), ctx.Request())
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func buildAddressSnapshot(body addressRequest) (order.AddressSnapshot, error) {
	location, err := kernel.NewGeoPoint(body.Lat, body.Lng)
	if err != nil {
		return order.AddressSnapshot{}, err
	}

	return order.NewAddressSnapshot(
		body.Street, body.Number, body.Neighborhood, body.City, body.ZipCode, location)
}
