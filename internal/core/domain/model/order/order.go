package order

import (
	"errors"
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a committed purchase. It owns its line item
// snapshots, the server-computed subtotal and delivery fee, an immutable
// address snapshot for delivery orders, and the lifecycle status.
//
// Invariants:
//   - Subtotal and delivery fee are derived server-side, never client input
//   - Pickup orders carry no address and a zero fee
//   - Delivery orders always carry an address snapshot
//   - Status changes only through ChangeStatus, which enforces the state machine
//   - Orders are never deleted; Cancelled and Delivered are kept for audit
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	items        []LineItem
	subtotal     float64
	deliveryFee  float64
	deliveryType DeliveryType
	address      *AddressSnapshot
	payment      string
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates a checkout result in Pending status.
//
// Items must be non-empty and individually constructed; the subtotal is
// computed here from their captured prices. For Delivery orders the address
// snapshot is required and deliveryFee is the fee computed by the pricing
// service. For Pickup orders any supplied address is discarded and the fee is
// forced to zero.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	deliveryType DeliveryType,
	address *AddressSnapshot,
	paymentMethod string,
	deliveryFee float64,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDeliveryType(deliveryType),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if o.deliveryType == Pickup {
		o.address = nil
		o.deliveryFee = 0
		return o, nil
	}

	if err := errors.Join(
		o.setAddress(address),
		o.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and the stored subtotal, fee, and creation time.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	deliveryType DeliveryType,
	address *AddressSnapshot,
	paymentMethod string,
	deliveryFee float64,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, items, deliveryType, address, paymentMethod, deliveryFee)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Items returns the line item snapshots in insertion order.
// The returned slice is a copy; the aggregate's items cannot be mutated.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the sum of line item totals.
func (o *Order) Subtotal() float64 { return o.subtotal }

// DeliveryFee returns the computed delivery fee; zero for pickup orders.
func (o *Order) DeliveryFee() float64 { return o.deliveryFee }

// Total returns subtotal plus delivery fee.
func (o *Order) Total() float64 { return o.subtotal + o.deliveryFee }

// DeliveryType returns whether the order is delivered or picked up.
func (o *Order) DeliveryType() DeliveryType { return o.deliveryType }

// DeliveryAddress returns the address snapshot, or nil for pickup orders.
func (o *Order) DeliveryAddress() *AddressSnapshot { return o.address }

// PaymentMethod returns the opaque payment method label.
func (o *Order) PaymentMethod() string { return o.payment }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// ChangeStatus moves the order to newStatus if the state machine permits it.
// This is the only way an order's status changes.
func (o *Order) ChangeStatus(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	subtotal := 0.0
	copied := make([]LineItem, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		copied[i] = item
		subtotal += item.Total()
	}

	o.items = copied
	o.subtotal = subtotal
	return nil
}

func (o *Order) setDeliveryType(deliveryType DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	o.deliveryType = deliveryType
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.payment = paymentMethod
	return nil
}

func (o *Order) setAddress(address *AddressSnapshot) error {
	if address == nil {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if err := address.Validate(); err != nil {
		return err
	}

	snapshot := *address
	o.address = &snapshot
	return nil
}

func (o *Order) setDeliveryFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidError("deliveryFee")
	}
	o.deliveryFee = fee
	return nil
}
