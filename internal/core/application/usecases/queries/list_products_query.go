package queries

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery lists the catalog. The storefront sees only available
// products; the admin view includes hidden ones.
type ListProductsQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a catalog listing query.
func NewListProductsQuery(availableOnly bool) ListProductsQuery {
	return ListProductsQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// AvailableOnly reports whether hidden products are filtered out.
func (q ListProductsQuery) AvailableOnly() bool { return q.availableOnly }
