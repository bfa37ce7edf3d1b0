package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListAddressesQueryHandler lists a customer's saved addresses.
type ListAddressesQueryHandler struct {
	db *gorm.DB
}

// NewListAddressesQueryHandler creates a handler for address book listings.
func NewListAddressesQueryHandler(db *gorm.DB) ListAddressesQueryHandler {
	return ListAddressesQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h ListAddressesQueryHandler) Handle(ctx context.Context, query ListAddressesQuery) ([]AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []addressRow
	err := h.db.WithContext(ctx).
		Where("customer_id = ?", query.CustomerID().Bytes()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	responses := make([]AddressResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toAddressResponse(row))
	}

	return responses, nil
}
