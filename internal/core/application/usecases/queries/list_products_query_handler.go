package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListProductsQueryHandler lists catalog products from the database.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for catalog listings.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the listing, ordered by category then name.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Order("category, name")
	if query.AvailableOnly() {
		tx = tx.Where("available = ?", true)
	}

	var rows []productRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toProductResponse(row))
	}

	return responses, nil
}
