package commands

import (
	"context"
)

// DeleteAddressCommandHandler handles removing a saved address. Orders hold
// their own address snapshots, so past orders are unaffected.
type DeleteAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewDeleteAddressCommandHandler creates a handler for address deletion.
func NewDeleteAddressCommandHandler(uowFactory AddressUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{uowFactory: uowFactory}
}

// Handle removes the address after checking it belongs to the requesting
// customer. A foreign address fails with ErrNotResourceOwner.
func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()
	aggregate, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.CustomerID()) {
		return ErrNotResourceOwner
	}

	if err = addressRepo.Delete(ctx, cmd.AddressID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
