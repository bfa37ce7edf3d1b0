package queries

import (
	"context"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/services"

	"gorm.io/gorm"
)

// CalculateDeliveryQuoteQueryHandler previews the delivery fee for a
// destination using the current store settings and tariff.
type CalculateDeliveryQuoteQueryHandler struct {
	settings GetSettingsQueryHandler
	pricer   services.DeliveryPricer
}

// NewCalculateDeliveryQuoteQueryHandler creates a handler for fee previews.
func NewCalculateDeliveryQuoteQueryHandler(db *gorm.DB, pricer services.DeliveryPricer) CalculateDeliveryQuoteQueryHandler {
	return CalculateDeliveryQuoteQueryHandler{
		settings: NewGetSettingsQueryHandler(db),
		pricer:   pricer,
	}
}

// Handle loads the settings and quotes the fee. Unset store coordinates
// surface as services.ErrStoreLocationNotConfigured.
func (h CalculateDeliveryQuoteQueryHandler) Handle(ctx context.Context, query CalculateDeliveryQuoteQuery) (DeliveryQuoteResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryQuoteResponse{}, err
	}

	storeSettings, err := h.settings.Handle(ctx, NewGetSettingsQuery())
	if err != nil {
		return DeliveryQuoteResponse{}, err
	}

	if storeSettings.StoreLat == nil || storeSettings.StoreLng == nil {
		return DeliveryQuoteResponse{}, services.ErrStoreLocationNotConfigured
	}

	storeLocation, err := kernel.NewGeoPoint(*storeSettings.StoreLat, *storeSettings.StoreLng)
	if err != nil {
		return DeliveryQuoteResponse{}, services.ErrStoreLocationNotConfigured
	}

	quote, err := h.pricer.Quote(storeLocation, query.Destination(), services.Tariff{
		RatePerKm:  storeSettings.DeliveryFeePerKm,
		MinimumFee: storeSettings.MinimumDeliveryFee,
	})
	if err != nil {
		return DeliveryQuoteResponse{}, err
	}

	return DeliveryQuoteResponse{
		DeliveryFee:       quote.Fee,
		DistanceKm:        quote.DistanceKm,
		CalculationMethod: string(quote.Method),
	}, nil
}
