package ports

import (
	"context"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the single store
// settings record.
type SettingsRepository interface {
	// Get retrieves the settings record, creating it with defaults if it
	// does not exist yet.
	Get(ctx context.Context) (*settings.StoreSettings, error)

	// Update persists changes to the settings record.
	Update(ctx context.Context, aggregate *settings.StoreSettings) error
}
