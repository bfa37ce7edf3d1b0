// Package services provides domain services that implement business logic
// spanning multiple aggregates. DeliveryPricer turns the distance between the
// store and a destination into a delivery fee under the configured tariff.
package services
