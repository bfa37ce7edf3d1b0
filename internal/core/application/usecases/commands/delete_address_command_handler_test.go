package commands_test

import (
	"testing"

	"github.com/AbnerVital/7KDelivery/internal/core/application/usecases/commands"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/address"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func savedAddress(t *testing.T, id, customerID kernel.UUID) *address.Address {
	t.Helper()
	location, err := kernel.NewGeoPoint(-23.5605, -46.6433)
	require.NoError(t, err)
	a, err := address.NewAddress(id, customerID, "Rua das Pizzas", "123", "Centro", "Sao Paulo", "01234-567", location)
	require.NoError(t, err)
	return a
}

func TestDeleteAddressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	addressID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewDeleteAddressCommand(addressID, customerID)
	require.NoError(t, err)

	addressRepo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		addressRepo.On("Get", mock.Anything, addressID).
			Return(savedAddress(t, addressID, customerID), nil).Once(),
		addressRepo.On("Delete", mock.Anything, addressID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteAddressCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestDeleteAddressCommandHandler_Handle_ForeignAddress(t *testing.T) {
	ctx := t.Context()
	addressID := kernel.NewUUID()
	cmd, err := commands.NewDeleteAddressCommand(addressID, kernel.NewUUID())
	require.NoError(t, err)

	addressRepo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		addressRepo.On("Get", mock.Anything, addressID).
			Return(savedAddress(t, addressID, kernel.NewUUID()), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteAddressCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNotResourceOwner)
	addressRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
