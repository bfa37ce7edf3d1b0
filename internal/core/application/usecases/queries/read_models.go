// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the storage directly and return plain response
// structures; they never load or mutate domain aggregates.
package queries

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Row structs map the storage tables for the read side. They mirror the
// write-side DTOs in the postgres adapter but stay local to this package so
// the read path can evolve independently.

type orderRow struct {
	ID                  uuid.UUID `gorm:"primaryKey"`
	CustomerID          uuid.UUID
	Subtotal            float64
	DeliveryFee         float64
	DeliveryType        string
	AddressStreet       *string
	AddressNumber       *string
	AddressNeighborhood *string
	AddressCity         *string
	AddressZipCode      *string
	AddressLat          *float64
	AddressLng          *float64
	PaymentMethod       string
	Status              int
	CreatedAt           time.Time

	Items []orderItemRow `gorm:"foreignKey:OrderID"`
}

func (orderRow) TableName() string { return "orders" }

type orderItemRow struct {
	ID            uuid.UUID `gorm:"primaryKey"`
	OrderID       uuid.UUID
	Position      int
	ProductID     uuid.UUID
	ProductName   string
	UnitPrice     float64
	Quantity      int
	Customization string
}

func (orderItemRow) TableName() string { return "order_items" }

// itemsByPosition preloads line items in their checkout sequence.
func itemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

type productRow struct {
	ID          uuid.UUID `gorm:"primaryKey"`
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	Available   bool
	CreatedAt   time.Time
}

func (productRow) TableName() string { return "products" }

type addressRow struct {
	ID           uuid.UUID `gorm:"primaryKey"`
	CustomerID   uuid.UUID
	Street       string
	Number       string
	Neighborhood string
	City         string
	ZipCode      string
	Lat          float64
	Lng          float64
	CreatedAt    time.Time
}

func (addressRow) TableName() string { return "addresses" }

type settingsRow struct {
	ID                 int `gorm:"primaryKey"`
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

func (settingsRow) TableName() string { return "store_settings" }
