package commands

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one cart entry as submitted by the client. It carries no
// price: prices are read from the catalog inside the checkout transaction.
type OrderItemInput struct {
	ProductID     kernel.UUID
	Quantity      int
	Customization string
}

// CreateOrderCommand represents a checkout request: the customer's cart, the
// delivery type, the destination for delivery orders, and the payment method.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	items           []OrderItemInput
	deliveryType    order.DeliveryType
	deliveryAddress *order.AddressSnapshot
	paymentMethod   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command.
//
// Items must be non-empty with positive quantities. Delivery orders require a
// constructed address snapshot; for pickup orders deliveryAddress is ignored.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []OrderItemInput,
	deliveryType order.DeliveryType,
	deliveryAddress *order.AddressSnapshot,
	paymentMethod string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setDeliveryType(deliveryType),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := cmd.setDeliveryAddress(deliveryAddress); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the identifier of the customer checking out.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// Items returns the submitted cart entries.
func (c CreateOrderCommand) Items() []OrderItemInput { return c.items }

// DeliveryType returns whether the order is delivered or picked up.
func (c CreateOrderCommand) DeliveryType() order.DeliveryType { return c.deliveryType }

// DeliveryAddress returns the destination snapshot, nil for pickup orders.
func (c CreateOrderCommand) DeliveryAddress() *order.AddressSnapshot { return c.deliveryAddress }

// PaymentMethod returns the opaque payment method label.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("items.productId", err)
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("items.quantity")
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType order.DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	c.deliveryType = deliveryType
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress *order.AddressSnapshot) error {
	if c.deliveryType != order.Delivery {
		c.deliveryAddress = nil
		return nil
	}

	if deliveryAddress == nil {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
