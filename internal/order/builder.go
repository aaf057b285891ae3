package order

import (
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/errors"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
)

// Build serializes the cart into the order transport payload. Customer
// fields are attached verbatim; validation happens before this is called.
// Deterministic: the same cart and fields always produce the same payload
// (no timestamps, no generated ids).
//
// An empty cart is rejected here rather than left to the backend.
func Build(lines []models.CartLine, customer *models.CheckoutRequest) (*models.OrderPayload, error) {

	if len(lines) == 0 {
		return nil, errors.EmptyCartError()
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return &models.OrderPayload{
		CustomerName: customer.CustomerName,
		Email:        customer.Email,
		Phone:        customer.Phone,
		DeliveryDate: customer.DeliveryDate,
		Note:         customer.Note,
		Items:        items,
	}, nil
}
