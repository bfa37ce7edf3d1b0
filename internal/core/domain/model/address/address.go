// Package address holds a customer's saved delivery addresses. Orders copy
// the chosen address into an immutable snapshot at checkout, so editing or
// deleting a saved address never affects order history.
package address

import (
	"errors"
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress or RestoreAddress factory methods.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a saved delivery destination owned by one customer.
type Address struct {
	id           kernel.UUID
	customerID   kernel.UUID
	street       string
	number       string
	neighborhood string
	city         string
	zipCode      string
	location     kernel.GeoPoint
	createdAt    time.Time

	isConstructed bool
}

// NewAddress creates a saved address for a customer.
func NewAddress(
	id kernel.UUID,
	customerID kernel.UUID,
	street, number, neighborhood, city, zipCode string,
	location kernel.GeoPoint,
) (*Address, error) {
	a := &Address{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setCustomerID(customerID),
		a.setField(&a.street, street, "street"),
		a.setField(&a.number, number, "number"),
		a.setField(&a.neighborhood, neighborhood, "neighborhood"),
		a.setField(&a.city, city, "city"),
		a.setField(&a.zipCode, zipCode, "zipCode"),
		a.setLocation(location),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs a saved address from persistence.
func RestoreAddress(
	id kernel.UUID,
	customerID kernel.UUID,
	street, number, neighborhood, city, zipCode string,
	location kernel.GeoPoint,
	createdAt time.Time,
) (*Address, error) {
	a, err := NewAddress(id, customerID, street, number, neighborhood, city, zipCode, location)
	if err != nil {
		return nil, err
	}

	a.createdAt = createdAt
	return a, nil
}

// Validate ensures the Address was created through a factory method.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// IsOwnedBy reports whether the address belongs to the given customer.
func (a *Address) IsOwnedBy(customerID kernel.UUID) bool {
	return a.customerID.IsEqual(customerID)
}

// ID returns the address identifier.
func (a *Address) ID() kernel.UUID { return a.id }

// CustomerID returns the owning customer's identifier.
func (a *Address) CustomerID() kernel.UUID { return a.customerID }

// Street returns the street name.
func (a *Address) Street() string { return a.street }

// Number returns the building number.
func (a *Address) Number() string { return a.number }

// Neighborhood returns the neighborhood.
func (a *Address) Neighborhood() string { return a.neighborhood }

// City returns the city.
func (a *Address) City() string { return a.city }

// ZipCode returns the postal code.
func (a *Address) ZipCode() string { return a.zipCode }

// Location returns the address coordinates.
func (a *Address) Location() kernel.GeoPoint { return a.location }

// CreatedAt returns the creation timestamp (UTC).
func (a *Address) CreatedAt() time.Time { return a.createdAt }

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	a.customerID = customerID
	return nil
}

func (a *Address) setField(dst *string, value, paramName string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = value
	return nil
}

func (a *Address) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
