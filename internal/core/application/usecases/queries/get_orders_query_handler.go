package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. The scope comes from the query: one customer
// or all of them.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Preload("Items", itemsByPosition).
		Order("created_at DESC")
	if customerID := query.CustomerID(); customerID != nil {
		tx = tx.Where("customer_id = ?", customerID.Bytes())
	}

	var rows []orderRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toOrderResponse(row))
	}

	return responses, nil
}
