package order

import (
	"fmt"

	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
)

// DeliveryType distinguishes orders brought to the customer from orders the
// customer picks up at the store.
type DeliveryType string

const (
	// Delivery orders carry an address snapshot and a computed delivery fee.
	Delivery DeliveryType = "DELIVERY"

	// Pickup orders have no address and always a zero delivery fee.
	Pickup DeliveryType = "PICKUP"
)

// DeliveryTypeFromString parses the wire representation of a delivery type.
func DeliveryTypeFromString(s string) (DeliveryType, error) {
	dt := DeliveryType(s)
	if err := dt.Validate(); err != nil {
		return "", err
	}
	return dt, nil
}

// Validate checks that the value is one of the two defined delivery types.
func (dt DeliveryType) Validate() error {
	if dt != Delivery && dt != Pickup {
		return errs.NewValueIsInvalidErrorWithCause("deliveryType",
			fmt.Errorf("%q is not a valid delivery type", string(dt)))
	}
	return nil
}
