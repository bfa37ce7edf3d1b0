package queries

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrCalculateDeliveryQuoteQueryIsNotConstructed = errors.New(
	"CalculateDeliveryQuoteQuery must be created via NewCalculateDeliveryQuoteQuery constructor",
)

// CalculateDeliveryQuoteQuery asks for a delivery fee preview before
// checkout. It is read-only: nothing is reserved or persisted.
type CalculateDeliveryQuoteQuery struct { //nolint:recvcheck //using for validation
	destination kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCalculateDeliveryQuoteQuery creates a fee preview query for destination.
func NewCalculateDeliveryQuoteQuery(destination kernel.GeoPoint) (CalculateDeliveryQuoteQuery, error) {
	if err := destination.Validate(); err != nil {
		return CalculateDeliveryQuoteQuery{}, err
	}

	return CalculateDeliveryQuoteQuery{
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateDeliveryQuoteQuery) Validate() error {
	return q.guard.Validate(ErrCalculateDeliveryQuoteQueryIsNotConstructed)
}

// Destination returns the delivery destination coordinates.
func (q CalculateDeliveryQuoteQuery) Destination() kernel.GeoPoint { return q.destination }
