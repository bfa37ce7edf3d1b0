package commands

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand represents an admin edit of the store settings.
// A nil storeLocation clears the store coordinates, which disables delivery
// quoting until they are set again.
type UpdateSettingsCommand struct { //nolint:recvcheck //using for validation
	minimumOrder       float64
	deliveryFeePerKm   float64
	minimumDeliveryFee float64
	storeLocation      *kernel.GeoPoint
	storeAddress       string
	phone              string
	whatsapp           string
	email              string

	guard guard.ConstructorGuard
}

// NewUpdateSettingsCommand creates a settings update command.
func NewUpdateSettingsCommand(
	minimumOrder, deliveryFeePerKm, minimumDeliveryFee float64,
	storeLocation *kernel.GeoPoint,
	storeAddress, phone, whatsapp, email string,
) (UpdateSettingsCommand, error) {
	cmd := UpdateSettingsCommand{
		storeAddress: storeAddress,
		phone:        phone,
		whatsapp:     whatsapp,
		email:        email,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMoneyField(&cmd.minimumOrder, minimumOrder, "minimumOrder"),
		cmd.setMoneyField(&cmd.deliveryFeePerKm, deliveryFeePerKm, "deliveryFeePerKm"),
		cmd.setMoneyField(&cmd.minimumDeliveryFee, minimumDeliveryFee, "minimumDeliveryFee"),
		cmd.setStoreLocation(storeLocation),
	); err != nil {
		return UpdateSettingsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

// MinimumOrder returns the new checkout minimum.
func (c UpdateSettingsCommand) MinimumOrder() float64 { return c.minimumOrder }

// DeliveryFeePerKm returns the new per-kilometer rate.
func (c UpdateSettingsCommand) DeliveryFeePerKm() float64 { return c.deliveryFeePerKm }

// MinimumDeliveryFee returns the new fee floor.
func (c UpdateSettingsCommand) MinimumDeliveryFee() float64 { return c.minimumDeliveryFee }

// StoreLocation returns the new store coordinates, nil to clear them.
func (c UpdateSettingsCommand) StoreLocation() *kernel.GeoPoint { return c.storeLocation }

// StoreAddress returns the new human-readable store address.
func (c UpdateSettingsCommand) StoreAddress() string { return c.storeAddress }

// Phone returns the new phone number.
func (c UpdateSettingsCommand) Phone() string { return c.phone }

// Whatsapp returns the new WhatsApp contact.
func (c UpdateSettingsCommand) Whatsapp() string { return c.whatsapp }

// Email returns the new contact email.
func (c UpdateSettingsCommand) Email() string { return c.email }

func (c *UpdateSettingsCommand) setMoneyField(dst *float64, value float64, paramName string) error {
	if value < 0 {
		return errs.NewValueIsInvalidError(paramName)
	}
	*dst = value
	return nil
}

func (c *UpdateSettingsCommand) setStoreLocation(location *kernel.GeoPoint) error {
	if location == nil {
		c.storeLocation = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	copied := *location
	c.storeLocation = &copied
	return nil
}
