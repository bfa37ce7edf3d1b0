package queries

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New(
	"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
)

// GetSettingsQuery retrieves the store settings, creating the default record
// on first read.
type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSettingsQuery creates a settings lookup query.
func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}
