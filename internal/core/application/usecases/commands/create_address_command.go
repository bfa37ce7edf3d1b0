package commands

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand represents a customer saving a delivery address.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID    kernel.UUID
	customerID   kernel.UUID
	street       string
	number       string
	neighborhood string
	city         string
	zipCode      string
	location     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand creates an address creation command.
func NewCreateAddressCommand(
	addressID kernel.UUID,
	customerID kernel.UUID,
	street, number, neighborhood, city, zipCode string,
	location kernel.GeoPoint,
) (CreateAddressCommand, error) {
	cmd := CreateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddressID(addressID),
		cmd.setCustomerID(customerID),
		cmd.setField(&cmd.street, street, "street"),
		cmd.setField(&cmd.number, number, "number"),
		cmd.setField(&cmd.neighborhood, neighborhood, "neighborhood"),
		cmd.setField(&cmd.city, city, "city"),
		cmd.setField(&cmd.zipCode, zipCode, "zipCode"),
		cmd.setLocation(location),
	); err != nil {
		return CreateAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

// AddressID returns the identifier the address will be created under.
func (c CreateAddressCommand) AddressID() kernel.UUID { return c.addressID }

// CustomerID returns the owning customer's identifier.
func (c CreateAddressCommand) CustomerID() kernel.UUID { return c.customerID }

// Street returns the street name.
func (c CreateAddressCommand) Street() string { return c.street }

// Number returns the building number.
func (c CreateAddressCommand) Number() string { return c.number }

// Neighborhood returns the neighborhood.
func (c CreateAddressCommand) Neighborhood() string { return c.neighborhood }

// City returns the city.
func (c CreateAddressCommand) City() string { return c.city }

// ZipCode returns the postal code.
func (c CreateAddressCommand) ZipCode() string { return c.zipCode }

// Location returns the address coordinates.
func (c CreateAddressCommand) Location() kernel.GeoPoint { return c.location }

func (c *CreateAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	c.addressID = addressID
	return nil
}

func (c *CreateAddressCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateAddressCommand) setField(dst *string, value, paramName string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = value
	return nil
}

func (c *CreateAddressCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
