// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table; the delivery address snapshot is
// embedded as nullable columns since pickup orders have none.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;index"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal      float64
	DeliveryFee   float64
	DeliveryType  string
	Address       AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	PaymentMethod string
	Status        int `gorm:"index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one priced line item row of an order. Position
// preserves the checkout line sequence; item rows carry synthetic ids.
type OrderItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	Position      int       `gorm:"not null"`
	ProductID     uuid.UUID `gorm:"type:uuid"`
	ProductName   string
	UnitPrice     float64
	Quantity      int
	Customization string
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents the embedded delivery address snapshot columns.
// All fields are nullable; a pickup order stores NULLs.
type AddressDTO struct {
	Street       *string
	Number       *string
	Neighborhood *string
	City         *string
	ZipCode      *string
	Lat          *float64
	Lng          *float64
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		Subtotal:      aggregate.Subtotal(),
		DeliveryFee:   aggregate.DeliveryFee(),
		DeliveryType:  string(aggregate.DeliveryType()),
		PaymentMethod: aggregate.PaymentMethod(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
	}

	for position, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:            uuid.New(),
			OrderID:       dto.ID,
			Position:      position,
			ProductID:     item.ProductID().Bytes(),
			ProductName:   item.ProductName(),
			UnitPrice:     item.UnitPrice(),
			Quantity:      item.Quantity(),
			Customization: item.Customization(),
		})
	}

	if snapshot := aggregate.DeliveryAddress(); snapshot != nil {
		street := snapshot.Street()
		number := snapshot.Number()
		neighborhood := snapshot.Neighborhood()
		city := snapshot.City()
		zipCode := snapshot.ZipCode()
		lat := snapshot.Location().Latitude()
		lng := snapshot.Location().Longitude()
		dto.Address = AddressDTO{
			Street:       &street,
			Number:       &number,
			Neighborhood: &neighborhood,
			City:         &city,
			ZipCode:      &zipCode,
			Lat:          &lat,
			Lng:          &lng,
		}
	}

	return dto
}

// toDomain converts a database DTO back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(
			productID, itemDTO.ProductName, itemDTO.UnitPrice,
			itemDTO.Quantity, itemDTO.Customization,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var snapshot *order.AddressSnapshot
	if dto.Address.Street != nil && dto.Address.Lat != nil && dto.Address.Lng != nil {
		location, locErr := kernel.NewGeoPoint(*dto.Address.Lat, *dto.Address.Lng)
		if locErr != nil {
			return nil, locErr
		}

		built, addrErr := order.NewAddressSnapshot(
			*dto.Address.Street,
			derefOrEmpty(dto.Address.Number),
			derefOrEmpty(dto.Address.Neighborhood),
			derefOrEmpty(dto.Address.City),
			derefOrEmpty(dto.Address.ZipCode),
			location,
		)
		if addrErr != nil {
			return nil, addrErr
		}
		snapshot = &built
	}

	return order.RestoreOrder(
		id, customerID, items,
		order.DeliveryType(dto.DeliveryType), snapshot,
		dto.PaymentMethod, dto.DeliveryFee,
		order.Status(dto.Status), dto.CreatedAt,
	)
}

func derefOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
