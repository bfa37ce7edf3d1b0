package http

import (
	"time"

	"github.com/AbnerVital/7KDelivery/internal/core/application/usecases/queries"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/address"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/product"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/settings"
)

type errorJSON struct {
	Error string `json:"error"`
}

type orderJSON struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	Items           []orderItemJSON `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	DeliveryFee     float64         `json:"deliveryFee"`
	Total           float64         `json:"total"`
	DeliveryType    string          `json:"deliveryType"`
	DeliveryAddress *addressJSON    `json:"deliveryAddress,omitempty"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type orderItemJSON struct {
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	UnitPrice     float64 `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
	Customization string  `json:"customization,omitempty"`
	Total         float64 `json:"total"`
}

type addressJSON struct {
	ID           string  `json:"id,omitempty"`
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	ZipCode      string  `json:"zipCode"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

type orderStatusJSON struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type productJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Available   bool    `json:"available"`
}

type settingsJSON struct {
	MinimumOrder       float64  `json:"minimumOrder"`
	DeliveryFeePerKm   float64  `json:"deliveryFeePerKm"`
	MinimumDeliveryFee float64  `json:"minimumDeliveryFee"`
	StoreLat           *float64 `json:"storeLat"`
	StoreLng           *float64 `json:"storeLng"`
	StoreAddress       string   `json:"storeAddress"`
	Phone              string   `json:"phone"`
	Whatsapp           string   `json:"whatsapp"`
	Email              string   `json:"email"`
}

type deliveryQuoteJSON struct {
	DeliveryFee       float64 `json:"deliveryFee"`
	DistanceKm        float64 `json:"distance"`
	CalculationMethod string  `json:"calculationMethod"`
}

func toOrderJSON(view queries.OrderResponse) orderJSON {
	items := make([]orderItemJSON, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, orderItemJSON{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			UnitPrice:     item.UnitPrice,
			Quantity:      item.Quantity,
			Customization: item.Customization,
			Total:         item.Total,
		})
	}

	var deliveryAddress *addressJSON
	if view.DeliveryAddress != nil {
		deliveryAddress = &addressJSON{
			Street:       view.DeliveryAddress.Street,
			Number:       view.DeliveryAddress.Number,
			Neighborhood: view.DeliveryAddress.Neighborhood,
			City:         view.DeliveryAddress.City,
			ZipCode:      view.DeliveryAddress.ZipCode,
			Lat:          view.DeliveryAddress.Lat,
			Lng:          view.DeliveryAddress.Lng,
		}
	}

	return orderJSON{
		ID:              view.ID,
		CustomerID:      view.CustomerID,
		Items:           items,
		Subtotal:        view.Subtotal,
		DeliveryFee:     view.DeliveryFee,
		Total:           view.Total,
		DeliveryType:    view.DeliveryType,
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   view.PaymentMethod,
		Status:          view.Status,
		CreatedAt:       view.CreatedAt,
	}
}

// orderAggregateToJSON renders a freshly created or updated aggregate without
// a read-side round trip.
func orderAggregateToJSON(aggregate *order.Order) orderJSON {
	items := make([]orderItemJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemJSON{
			ProductID:     item.ProductID().String(),
			ProductName:   item.ProductName(),
			UnitPrice:     item.UnitPrice(),
			Quantity:      item.Quantity(),
			Customization: item.Customization(),
			Total:         item.Total(),
		})
	}

	var deliveryAddress *addressJSON
	if snapshot := aggregate.DeliveryAddress(); snapshot != nil {
		deliveryAddress = &addressJSON{
			Street:       snapshot.Street(),
			Number:       snapshot.Number(),
			Neighborhood: snapshot.Neighborhood(),
			City:         snapshot.City(),
			ZipCode:      snapshot.ZipCode(),
			Lat:          snapshot.Location().Latitude(),
			Lng:          snapshot.Location().Longitude(),
		}
	}

	return orderJSON{
		ID:              aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		Items:           items,
		Subtotal:        aggregate.Subtotal(),
		DeliveryFee:     aggregate.DeliveryFee(),
		Total:           aggregate.Total(),
		DeliveryType:    string(aggregate.DeliveryType()),
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   aggregate.PaymentMethod(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func toProductJSON(view queries.ProductResponse) productJSON {
	return productJSON{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		Price:       view.Price,
		Category:    view.Category,
		ImageURL:    view.ImageURL,
		Available:   view.Available,
	}
}

func productAggregateToJSON(aggregate *product.Product) productJSON {
	return productJSON{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Category:    aggregate.Category(),
		ImageURL:    aggregate.ImageURL(),
		Available:   aggregate.IsAvailable(),
	}
}

func toAddressJSON(view queries.AddressResponse) addressJSON {
	return addressJSON{
		ID:           view.ID,
		Street:       view.Street,
		Number:       view.Number,
		Neighborhood: view.Neighborhood,
		City:         view.City,
		ZipCode:      view.ZipCode,
		Lat:          view.Lat,
		Lng:          view.Lng,
	}
}

func addressAggregateToJSON(aggregate *address.Address) addressJSON {
	return addressJSON{
		ID:           aggregate.ID().String(),
		Street:       aggregate.Street(),
		Number:       aggregate.Number(),
		Neighborhood: aggregate.Neighborhood(),
		City:         aggregate.City(),
		ZipCode:      aggregate.ZipCode(),
		Lat:          aggregate.Location().Latitude(),
		Lng:          aggregate.Location().Longitude(),
	}
}

func toSettingsJSON(view queries.SettingsResponse) settingsJSON {
	return settingsJSON{
		MinimumOrder:       view.MinimumOrder,
		DeliveryFeePerKm:   view.DeliveryFeePerKm,
		MinimumDeliveryFee: view.MinimumDeliveryFee,
		StoreLat:           view.StoreLat,
		StoreLng:           view.StoreLng,
		StoreAddress:       view.StoreAddress,
		Phone:              view.Phone,
		Whatsapp:           view.Whatsapp,
		Email:              view.Email,
	}
}

func settingsAggregateToJSON(aggregate *settings.StoreSettings) settingsJSON {
	view := settingsJSON{
		MinimumOrder:       aggregate.MinimumOrder(),
		DeliveryFeePerKm:   aggregate.DeliveryFeePerKm(),
		MinimumDeliveryFee: aggregate.MinimumDeliveryFee(),
		StoreAddress:       aggregate.StoreAddress(),
		Phone:              aggregate.Phone(),
		Whatsapp:           aggregate.Whatsapp(),
		Email:              aggregate.Email(),
	}

	if location, configured := aggregate.StoreLocation(); configured {
		lat := location.Latitude()
		lng := location.Longitude()
		view.StoreLat = &lat
		view.StoreLng = &lng
	}

	return view
}
