// Package addressrepo implements saved address persistence over GORM.
package addressrepo

import (
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/address"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for persisting saved addresses.
type AddressDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	Street       string
	Number       string
	Neighborhood string
	City         string
	ZipCode      string
	Lat          float64
	Lng          float64
	CreatedAt    time.Time
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(aggregate *address.Address) AddressDTO {
	return AddressDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Street:       aggregate.Street(),
		Number:       aggregate.Number(),
		Neighborhood: aggregate.Neighborhood(),
		City:         aggregate.City(),
		ZipCode:      aggregate.ZipCode(),
		Lat:          aggregate.Location().Latitude(),
		Lng:          aggregate.Location().Longitude(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return address.RestoreAddress(
		id, customerID,
		dto.Street, dto.Number, dto.Neighborhood, dto.City, dto.ZipCode,
		location, dto.CreatedAt,
	)
}
