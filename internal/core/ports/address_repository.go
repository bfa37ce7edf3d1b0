package ports

import (
	"context"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/address"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for saved addresses.
type AddressRepository interface {
	// Add persists a new saved address.
	Add(ctx context.Context, aggregate *address.Address) error

	// Delete removes a saved address. Order address snapshots are unaffected.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a saved address by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// GetAllByCustomer retrieves one customer's addresses, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*address.Address, error)
}
