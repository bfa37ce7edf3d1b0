package commands

import (
	"context"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/address"
)

// CreateAddressCommandHandler handles saving addresses to a customer's book.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewCreateAddressCommandHandler creates a handler for address creation.
func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{uowFactory: uowFactory}
}

// Handle creates the saved address and returns it.
func (h *CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) (*address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newAddress, err := address.NewAddress(
		cmd.AddressID(), cmd.CustomerID(),
		cmd.Street(), cmd.Number(), cmd.Neighborhood(), cmd.City(), cmd.ZipCode(),
		cmd.Location(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AddressRepository().Add(ctx, newAddress); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newAddress, nil
}
