package queries

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQueryForCustomer or NewGetAllOrdersQuery constructor",
)

// GetOrdersQuery lists orders, newest first. Customers see only their own
// orders; the admin listing spans every customer.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQueryForCustomer creates a query scoped to one customer.
func NewGetOrdersQueryForCustomer(customerID kernel.UUID) (GetOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		customerID: &customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewGetAllOrdersQuery creates the unscoped admin listing query.
func NewGetAllOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the scoping customer, nil for the admin listing.
func (q GetOrdersQuery) CustomerID() *kernel.UUID { return q.customerID }
