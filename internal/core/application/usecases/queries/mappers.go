package queries

import (
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
)

func toOrderResponse(row orderRow) OrderResponse {
	response := OrderResponse{
		ID:            row.ID.String(),
		CustomerID:    row.CustomerID.String(),
		Items:         make([]OrderItemResponse, 0, len(row.Items)),
		Subtotal:      row.Subtotal,
		DeliveryFee:   row.DeliveryFee,
		Total:         row.Subtotal + row.DeliveryFee,
		DeliveryType:  row.DeliveryType,
		PaymentMethod: row.PaymentMethod,
		Status:        order.Status(row.Status).String(),
		CreatedAt:     row.CreatedAt,
	}

	for _, item := range row.Items {
		response.Items = append(response.Items, OrderItemResponse{
			ProductID:     item.ProductID.String(),
			ProductName:   item.ProductName,
			UnitPrice:     item.UnitPrice,
			Quantity:      item.Quantity,
			Customization: item.Customization,
			Total:         item.UnitPrice * float64(item.Quantity),
		})
	}

	if row.AddressStreet != nil && row.AddressLat != nil && row.AddressLng != nil {
		response.DeliveryAddress = &AddressResponse{
			Street:       *row.AddressStreet,
			Number:       stringOrEmpty(row.AddressNumber),
			Neighborhood: stringOrEmpty(row.AddressNeighborhood),
			City:         stringOrEmpty(row.AddressCity),
			ZipCode:      stringOrEmpty(row.AddressZipCode),
			Lat:          *row.AddressLat,
			Lng:          *row.AddressLng,
		}
	}

	return response
}

func toProductResponse(row productRow) ProductResponse {
	return ProductResponse{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Category:    row.Category,
		ImageURL:    row.ImageURL,
		Available:   row.Available,
	}
}

func toAddressResponse(row addressRow) AddressResponse {
	return AddressResponse{
		ID:           row.ID.String(),
		Street:       row.Street,
		Number:       row.Number,
		Neighborhood: row.Neighborhood,
		City:         row.City,
		ZipCode:      row.ZipCode,
		Lat:          row.Lat,
		Lng:          row.Lng,
	}
}

func toSettingsResponse(row settingsRow) SettingsResponse {
	return SettingsResponse{
		MinimumOrder:       row.MinimumOrder,
		DeliveryFeePerKm:   row.DeliveryFeePerKm,
		MinimumDeliveryFee: row.MinimumDeliveryFee,
		StoreLat:           row.StoreLat,
		StoreLng:           row.StoreLng,
		StoreAddress:       row.StoreAddress,
		Phone:              row.Phone,
		Whatsapp:           row.Whatsapp,
		Email:              row.Email,
	}
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
