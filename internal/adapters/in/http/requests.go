package http

// Request bodies are deliberately price-free where money is involved: unit
// prices, subtotals, and fees are always computed server-side.

type createOrderRequest struct {
	Items           []orderItemRequest `json:"items"`
	DeliveryType    string             `json:"deliveryType"`
	DeliveryAddress *addressRequest    `json:"deliveryAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
}

type orderItemRequest struct {
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	Customization string `json:"customization"`
}

type addressRequest struct {
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	ZipCode      string  `json:"zipCode"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

type calculateDeliveryRequest struct {
	DeliveryAddress addressRequest `json:"deliveryAddress"`
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Available   *bool   `json:"available"`
}

type updateSettingsRequest struct {
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
