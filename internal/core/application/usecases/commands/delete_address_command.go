package commands

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

// DeleteAddressCommand represents a customer removing one of their saved
// addresses. The customer identifier enforces ownership.
type DeleteAddressCommand struct { //nolint:recvcheck //using for validation
	addressID  kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAddressCommand creates an address deletion command.
func NewDeleteAddressCommand(addressID, customerID kernel.UUID) (DeleteAddressCommand, error) {
	cmd := DeleteAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddressID(addressID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return DeleteAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

// AddressID returns the identifier of the address to remove.
func (c DeleteAddressCommand) AddressID() kernel.UUID { return c.addressID }

// CustomerID returns the identifier of the requesting customer.
func (c DeleteAddressCommand) CustomerID() kernel.UUID { return c.customerID }

func (c *DeleteAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	c.addressID = addressID
	return nil
}

func (c *DeleteAddressCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = customerID
	return nil
}
