package commands

import (
	"errors"
	"fmt"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
)

var (
	// ErrProductUnavailable is the sentinel for ProductUnavailableError.
	ErrProductUnavailable = errors.New("product is unavailable")

	// ErrMinimumOrderNotMet is the sentinel for MinimumOrderNotMetError.
	ErrMinimumOrderNotMet = errors.New("order subtotal is below the store minimum")

	// ErrNotResourceOwner is returned when a customer operates on a resource
	// owned by someone else.
	ErrNotResourceOwner = errors.New("resource belongs to another customer")
)

// ProductUnavailableError reports a checkout item whose product is missing
// from the catalog or flagged unavailable. The whole order is rejected.
type ProductUnavailableError struct {
	ProductID kernel.UUID
}

// NewProductUnavailableError creates a ProductUnavailableError for productID.
func NewProductUnavailableError(productID kernel.UUID) *ProductUnavailableError {
	return &ProductUnavailableError{ProductID: productID}
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("product %s is unavailable", e.ProductID)
}

func (e *ProductUnavailableError) Unwrap() error {
	return ErrProductUnavailable
}

// MinimumOrderNotMetError reports a checkout whose subtotal falls below the
// store's configured minimum order value.
type MinimumOrderNotMetError struct {
	Minimum  float64
	Subtotal float64
}

// NewMinimumOrderNotMetError creates a MinimumOrderNotMetError.
func NewMinimumOrderNotMetError(minimum, subtotal float64) *MinimumOrderNotMetError {
	return &MinimumOrderNotMetError{Minimum: minimum, Subtotal: subtotal}
}

func (e *MinimumOrderNotMetError) Error() string {
	return fmt.Sprintf("order subtotal %.2f is below the store minimum %.2f", e.Subtotal, e.Minimum)
}

func (e *MinimumOrderNotMetError) Unwrap() error {
	return ErrMinimumOrderNotMet
}
