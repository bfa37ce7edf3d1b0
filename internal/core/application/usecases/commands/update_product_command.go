package commands

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents an admin edit of a catalog product.
// Edits never touch line item snapshots on existing orders.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       float64
	category    string
	imageURL    string
	available   bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a product update command.
func NewUpdateProductCommand(productID kernel.UUID, name, description string, price float64, category, imageURL string, available bool) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		description: description,
		imageURL:    imageURL,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to edit.
func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the new display name.
func (c UpdateProductCommand) Name() string { return c.name }

// Description returns the new description.
func (c UpdateProductCommand) Description() string { return c.description }

// Price returns the new unit price.
func (c UpdateProductCommand) Price() float64 { return c.price }

// Category returns the new category label.
func (c UpdateProductCommand) Category() string { return c.category }

// ImageURL returns the new image location.
func (c UpdateProductCommand) ImageURL() string { return c.imageURL }

// Available returns the new availability flag.
func (c UpdateProductCommand) Available() bool { return c.available }

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}

func (c *UpdateProductCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	c.category = category
	return nil
}
