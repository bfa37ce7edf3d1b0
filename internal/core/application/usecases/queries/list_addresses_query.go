package queries

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrListAddressesQueryIsNotConstructed = errors.New(
	"ListAddressesQuery must be created via NewListAddressesQuery constructor",
)

// ListAddressesQuery lists one customer's saved addresses, newest first.
type ListAddressesQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListAddressesQuery creates an address book listing query.
func NewListAddressesQuery(customerID kernel.UUID) (ListAddressesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListAddressesQuery{}, err
	}

	return ListAddressesQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (q ListAddressesQuery) CustomerID() kernel.UUID { return q.customerID }
