package queries

import (
	"time"
)

// OrderResponse is the read-side view of an order.
type OrderResponse struct {
	ID              string
	CustomerID      string
	Items           []OrderItemResponse
	Subtotal        float64
	DeliveryFee     float64
	Total           float64
	DeliveryType    string
	DeliveryAddress *AddressResponse
	PaymentMethod   string
	Status          string
	CreatedAt       time.Time
}

// OrderItemResponse is one priced line item of an order view.
type OrderItemResponse struct {
	ProductID     string
	ProductName   string
	UnitPrice     float64
	Quantity      int
	Customization string
	Total         float64
}

// AddressResponse is an address view, either an order's frozen snapshot or a
// customer's saved address.
type AddressResponse struct {
	ID           string
	Street       string
	Number       string
	Neighborhood string
	City         string
	ZipCode      string
	Lat          float64
	Lng          float64
}

// ProductResponse is the read-side view of a catalog product.
type ProductResponse struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	Available   bool
}

// SettingsResponse is the read-side view of the store settings.
type SettingsResponse struct {
	MinimumOrder       float64
	DeliveryFeePerKm   float64
	MinimumDeliveryFee float64
	StoreLat           *float64
	StoreLng           *float64
	StoreAddress       string
	Phone              string
	Whatsapp           string
	Email              string
}

// DeliveryQuoteResponse is the result of a delivery fee calculation.
type DeliveryQuoteResponse struct {
	DeliveryFee       float64
	DistanceKm        float64
	CalculationMethod string
}
