package ports

import (
	"context"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Delete removes a product from the catalog. Past orders keep their
	// line item snapshots.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves the full catalog, available or not.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetAllAvailable retrieves only products that can currently be ordered.
	GetAllAvailable(ctx context.Context) ([]*product.Product, error)
}
