package queries

import (
	"context"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/settings"

	"gorm.io/gorm"
)

// GetSettingsQueryHandler reads the store settings record, lazily creating
// it with defaults the first time the store is queried.
type GetSettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetSettingsQueryHandler creates a handler for settings lookups.
func NewGetSettingsQueryHandler(db *gorm.DB) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{db: db}
}

// Handle returns the settings, inserting the default record if none exists.
func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (SettingsResponse, error) {
	if err := query.Validate(); err != nil {
		return SettingsResponse{}, err
	}

	defaultLat := settings.DefaultStoreLatitude
	defaultLng := settings.DefaultStoreLongitude
	row := settingsRow{
		ID:                 1,
		MinimumOrder:       settings.DefaultMinimumOrder,
		DeliveryFeePerKm:   settings.DefaultDeliveryFeePerKm,
		MinimumDeliveryFee: settings.DefaultMinimumDeliveryFee,
		StoreLat:           &defaultLat,
		StoreLng:           &defaultLng,
	}

	err := h.db.WithContext(ctx).
		Where(settingsRow{ID: 1}).
		Attrs(row).
		FirstOrCreate(&row).Error
	if err != nil {
		return SettingsResponse{}, err
	}

	return toSettingsResponse(row), nil
}
