package settings

import (
	"errors"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
)

// ErrStoreSettingsAreNotConstructed is returned when a StoreSettings instance
// was not created through a factory method.
var ErrStoreSettingsAreNotConstructed = errors.New(
	"StoreSettings must be created via NewDefaultStoreSettings or RestoreStoreSettings constructor")

// Defaults applied when the settings record is created lazily on first read.
const (
	DefaultMinimumOrder       = 20.00
	DefaultDeliveryFeePerKm   = 5.00
	DefaultMinimumDeliveryFee = 0.00
	DefaultStoreLatitude      = -23.550520
	DefaultStoreLongitude     = -46.633308
)

// StoreSettings is the single-row store configuration: the checkout minimum,
// the delivery tariff, the store coordinates fees are measured from, and the
// public contact details. It is loaded from storage on every request that
// needs it rather than cached in a process global.
type StoreSettings struct {
	minimumOrder       float64
	deliveryFeePerKm   float64
	minimumDeliveryFee float64
	storeLocation      *kernel.GeoPoint
	storeAddress       string
	phone              string
	whatsapp           string
	email              string

	isConstructed bool
}

// NewDefaultStoreSettings creates the record written on first read.
func NewDefaultStoreSettings() *StoreSettings {
	location, _ := kernel.NewGeoPoint(DefaultStoreLatitude, DefaultStoreLongitude)
	return &StoreSettings{
		minimumOrder:       DefaultMinimumOrder,
		deliveryFeePerKm:   DefaultDeliveryFeePerKm,
		minimumDeliveryFee: DefaultMinimumDeliveryFee,
		storeLocation:      &location,
		isConstructed:      true,
	}
}

// RestoreStoreSettings reconstructs the settings record from persistence.
// A nil storeLocation means the store coordinates were never configured.
func RestoreStoreSettings(
	minimumOrder, deliveryFeePerKm, minimumDeliveryFee float64,
	storeLocation *kernel.GeoPoint,
	storeAddress, phone, whatsapp, email string,
) (*StoreSettings, error) {
	s := &StoreSettings{
		storeAddress:  storeAddress,
		phone:         phone,
		whatsapp:      whatsapp,
		email:         email,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setMinimumOrder(minimumOrder),
		s.setDeliveryFeePerKm(deliveryFeePerKm),
		s.setMinimumDeliveryFee(minimumDeliveryFee),
		s.setStoreLocation(storeLocation),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the StoreSettings were created through a factory method.
func (s *StoreSettings) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreSettingsAreNotConstructed
	}
	return nil
}

// MinimumOrder returns the smallest subtotal checkout accepts.
func (s *StoreSettings) MinimumOrder() float64 { return s.minimumOrder }

// DeliveryFeePerKm returns the per-kilometer delivery rate.
func (s *StoreSettings) DeliveryFeePerKm() float64 { return s.deliveryFeePerKm }

// MinimumDeliveryFee returns the fee floor; zero disables it.
func (s *StoreSettings) MinimumDeliveryFee() float64 { return s.minimumDeliveryFee }

// StoreLocation returns the store coordinates and whether they are configured.
func (s *StoreSettings) StoreLocation() (kernel.GeoPoint, bool) {
	if s.storeLocation == nil {
		return kernel.GeoPoint{}, false
	}
	return *s.storeLocation, true
}

// StoreAddress returns the human-readable store address.
func (s *StoreSettings) StoreAddress() string { return s.storeAddress }

// Phone returns the store phone number.
func (s *StoreSettings) Phone() string { return s.phone }

// Whatsapp returns the store WhatsApp contact.
func (s *StoreSettings) Whatsapp() string { return s.whatsapp }

// Email returns the store contact email.
func (s *StoreSettings) Email() string { return s.email }

// Update replaces all editable fields with admin-supplied values.
func (s *StoreSettings) Update(
	minimumOrder, deliveryFeePerKm, minimumDeliveryFee float64,
	storeLocation *kernel.GeoPoint,
	storeAddress, phone, whatsapp, email string,
) error {
	if err := errors.Join(
		s.setMinimumOrder(minimumOrder),
		s.setDeliveryFeePerKm(deliveryFeePerKm),
		s.setMinimumDeliveryFee(minimumDeliveryFee),
		s.setStoreLocation(storeLocation),
	); err != nil {
		return err
	}

	s.storeAddress = storeAddress
	s.phone = phone
	s.whatsapp = whatsapp
	s.email = email
	return nil
}

func (s *StoreSettings) setMinimumOrder(v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidError("minimumOrder")
	}
	s.minimumOrder = v
	return nil
}

func (s *StoreSettings) setDeliveryFeePerKm(v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidError("deliveryFeePerKm")
	}
	s.deliveryFeePerKm = v
	return nil
}

func (s *StoreSettings) setMinimumDeliveryFee(v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidError("minimumDeliveryFee")
	}
	s.minimumDeliveryFee = v
	return nil
}

func (s *StoreSettings) setStoreLocation(location *kernel.GeoPoint) error {
	if location == nil {
		s.storeLocation = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	copied := *location
	s.storeLocation = &copied
	return nil
}
