package product

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry managed by the store admin. Its price and
// availability are the source of truth at checkout: orders snapshot the
// current price and unavailable products cannot be ordered.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       float64
	category    string
	imageURL    string
	available   bool

	isConstructed bool
}

// NewProduct creates an available catalog entry.
func NewProduct(id kernel.UUID, name, description string, price float64, category, imageURL string) (*Product, error) {
	p := &Product{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.imageURL = imageURL
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, name, description string, price float64, category, imageURL string, available bool) (*Product, error) {
	p, err := NewProduct(id, name, description, price, category, imageURL)
	if err != nil {
		return nil, err
	}

	p.available = available
	return p, nil
}

// Validate ensures the Product was created through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Description returns the display description.
func (p *Product) Description() string { return p.description }

// Price returns the current unit price.
func (p *Product) Price() float64 { return p.price }

// Category returns the catalog category label.
func (p *Product) Category() string { return p.category }

// ImageURL returns the product image location, possibly empty.
func (p *Product) ImageURL() string { return p.imageURL }

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool { return p.available }

// Update replaces the editable fields with new admin-supplied values.
func (p *Product) Update(name, description string, price float64, category, imageURL string, available bool) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setCategory(category),
	); err != nil {
		return err
	}

	p.description = description
	p.imageURL = imageURL
	p.available = available
	return nil
}

// MakeUnavailable hides the product from checkout without deleting it.
func (p *Product) MakeUnavailable() { p.available = false }

// MakeAvailable puts the product back on sale.
func (p *Product) MakeAvailable() { p.available = true }

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}
