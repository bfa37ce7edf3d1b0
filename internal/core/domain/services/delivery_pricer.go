package services

import (
	"errors"
	"math"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
)

// ErrStoreLocationNotConfigured is returned when a delivery fee is requested
// but the store coordinates were never set in the store settings. A delivery
// fee is never silently zero; pickup is the only way to skip it.
var ErrStoreLocationNotConfigured = errors.New("store location is not configured")

// ErrCoordinatesRequired is returned when the delivery destination carries no
// valid coordinates.
var ErrCoordinatesRequired = errors.New("delivery address coordinates are required")

// CalculationMethod names how a delivery fee was derived.
type CalculationMethod string

const (
	// PerKilometer means the fee is the straight distance times the rate.
	PerKilometer CalculationMethod = "PER_KILOMETER"
	// MinimumApplied means the distance-based fee fell below the configured
	// floor and the floor was charged instead.
	MinimumApplied CalculationMethod = "MINIMUM_APPLIED"
)

// Tariff is the delivery pricing configuration taken from store settings.
// A MinimumFee of zero disables the floor.
type Tariff struct {
	RatePerKm  float64
	MinimumFee float64
}

// Quote is the result of a delivery fee calculation. Fee and DistanceKm are
// rounded to two decimal places.
type Quote struct {
	Fee        float64
	DistanceKm float64
	Method     CalculationMethod
}

// DeliveryPricer is a domain service that derives a delivery fee from the
// straight-line distance between the store and the destination.
type DeliveryPricer struct{}

// NewDeliveryPricer creates a new DeliveryPricer instance.
func NewDeliveryPricer() DeliveryPricer {
	return DeliveryPricer{}
}

// Quote calculates the fee for delivering from store to dest under tariff.
//
// The fee is distance times rate. If the tariff configures a minimum fee and
// the raw fee falls below it, the minimum is charged and the quote reports
// MinimumApplied. Rounding to cents happens once, on the final value.
func (p DeliveryPricer) Quote(store, dest kernel.GeoPoint, tariff Tariff) (Quote, error) {
	if err := store.Validate(); err != nil {
		return Quote{}, ErrStoreLocationNotConfigured
	}
	if err := dest.Validate(); err != nil {
		return Quote{}, ErrCoordinatesRequired
	}
	if tariff.RatePerKm < 0 {
		return Quote{}, errs.NewValueIsInvalidError("ratePerKm")
	}
	if tariff.MinimumFee < 0 {
		return Quote{}, errs.NewValueIsInvalidError("minimumFee")
	}

	distance, err := store.DistanceKmTo(dest)
	if err != nil {
		return Quote{}, err
	}

	fee := distance * tariff.RatePerKm
	method := PerKilometer

	if tariff.MinimumFee > 0 && fee < tariff.MinimumFee {
		fee = tariff.MinimumFee
		method = MinimumApplied
	}

	return Quote{
		Fee:        roundToCents(fee),
		DistanceKm: roundToCents(distance),
		Method:     method,
	}, nil
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
