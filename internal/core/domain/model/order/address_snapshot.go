package order

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

// ErrAddressSnapshotIsNotConstructed is returned when using an AddressSnapshot
// that was not created via NewAddressSnapshot.
var ErrAddressSnapshotIsNotConstructed = errors.New(
	"AddressSnapshot must be created via NewAddressSnapshot constructor")

// AddressSnapshot is the delivery destination captured at checkout.
// It is a copy of the customer's address, not a live reference: the customer
// editing or deleting the saved address later does not touch existing orders.
type AddressSnapshot struct { //nolint:recvcheck //using for validation
	street       string
	number       string
	neighborhood string
	city         string
	zipCode      string
	location     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAddressSnapshot creates a destination snapshot. All textual fields are
// required, and the location must carry valid coordinates since delivery fees
// are derived from it.
func NewAddressSnapshot(street, number, neighborhood, city, zipCode string, location kernel.GeoPoint) (AddressSnapshot, error) {
	snapshot := AddressSnapshot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		snapshot.setField(&snapshot.street, street, "street"),
		snapshot.setField(&snapshot.number, number, "number"),
		snapshot.setField(&snapshot.neighborhood, neighborhood, "neighborhood"),
		snapshot.setField(&snapshot.city, city, "city"),
		snapshot.setField(&snapshot.zipCode, zipCode, "zipCode"),
		snapshot.setLocation(location),
	); err != nil {
		return AddressSnapshot{}, err
	}

	return snapshot, nil
}

// Validate ensures the snapshot was created via NewAddressSnapshot.
func (a AddressSnapshot) Validate() error {
	return a.guard.Validate(ErrAddressSnapshotIsNotConstructed)
}

// Street returns the street name.
func (a AddressSnapshot) Street() string { return a.street }

// Number returns the building number.
func (a AddressSnapshot) Number() string { return a.number }

// Neighborhood returns the neighborhood.
func (a AddressSnapshot) Neighborhood() string { return a.neighborhood }

// City returns the city.
func (a AddressSnapshot) City() string { return a.city }

// ZipCode returns the postal code.
func (a AddressSnapshot) ZipCode() string { return a.zipCode }

// Location returns the destination coordinates.
func (a AddressSnapshot) Location() kernel.GeoPoint { return a.location }

func (a *AddressSnapshot) setField(dst *string, value, paramName string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = value
	return nil
}

func (a *AddressSnapshot) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
