package order

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when using a LineItem that was not
// created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is an immutable snapshot of one purchased product position.
// The product name and unit price are copied from the catalog at order time,
// so later product edits or deletions never alter historical orders.
type LineItem struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	productName   string
	unitPrice     float64
	quantity      int
	customization string

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item snapshot. Quantity must be positive and the
// unit price non-negative; name and product id must be set. The customization
// is free text chosen by the customer and may be empty.
func NewLineItem(productID kernel.UUID, productName string, unitPrice float64, quantity int, customization string) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	item.customization = customization
	return item, nil
}

// Validate ensures the line item was created via NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the product at order time.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// ProductName returns the product name captured at order time.
func (li LineItem) ProductName() string {
	return li.productName
}

// UnitPrice returns the per-unit price captured at order time.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Customization returns the customer's free-text customization, if any.
func (li LineItem) Customization() string {
	return li.customization
}

// Total returns unit price times quantity.
func (li LineItem) Total() float64 {
	return li.unitPrice * float64(li.quantity)
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	li.productName = name
	return nil
}

func (li *LineItem) setUnitPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	li.unitPrice = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	li.quantity = quantity
	return nil
}
