// Package productrepo implements catalog product persistence over GORM.
package productrepo

import (
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Price       float64
	Category    string `gorm:"index"`
	ImageURL    string
	Available   bool
	CreatedAt   time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Category:    aggregate.Category(),
		ImageURL:    aggregate.ImageURL(),
		Available:   aggregate.IsAvailable(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.Name, dto.Description, dto.Price,
		dto.Category, dto.ImageURL, dto.Available,
	)
}
