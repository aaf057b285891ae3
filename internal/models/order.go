package models

type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderPayload is the transport body for POST /orders. It is built fresh at
// submission time from the current cart and the checkout form fields; it is
// never stored and carries no timestamps.
type OrderPayload struct {
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	DeliveryDate string      `json:"deliveryDate"`
	Note         string      `json:"note,omitempty"`
	Items        []OrderItem `json:"items"`
}

// CheckoutRequest carries the customer fields from the checkout form.
// DeliveryDate is an ISO date (2006-01-02); the minimum-lead-time rule is
// enforced by the order service, not by a struct tag.
type CheckoutRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=7"`
	DeliveryDate string `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	Note         string `json:"note,omitempty"`
}

type CheckoutResult struct {
	OrderID int64 `json:"order_id,omitempty"`
	// Submitted is false when API integration is disabled and the order is
	// handed to the manual WhatsApp channel only.
	Submitted    bool    `json:"submitted"`
	Total        float64 `json:"total"`
	WhatsAppLink string  `json:"whatsapp_link,omitempty"`
}
