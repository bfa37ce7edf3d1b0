package commands

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents an admin request to add a catalog product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       float64
	category    string
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a product creation command.
func NewCreateProductCommand(productID kernel.UUID, name, description string, price float64, category, imageURL string) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier the product will be created under.
func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the product display name.
func (c CreateProductCommand) Name() string { return c.name }

// Description returns the product description.
func (c CreateProductCommand) Description() string { return c.description }

// Price returns the unit price.
func (c CreateProductCommand) Price() float64 { return c.price }

// Category returns the catalog category label.
func (c CreateProductCommand) Category() string { return c.category }

// ImageURL returns the product image location.
func (c CreateProductCommand) ImageURL() string { return c.imageURL }

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}

func (c *CreateProductCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	c.category = category
	return nil
}
