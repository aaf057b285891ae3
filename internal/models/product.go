package models

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image"`
	Stock       int     `json:"stock"`
	Available   bool    `json:"available"`
	Status      string  `json:"status"`
}

// Purchasable reports the effective availability of the product:
// the availability flag AND an active status.
func (p *Product) Purchasable() bool {
	return p.Available && p.Status == ProductStatusActive
}

// ProductView is the catalog entry served to the storefront, enriched
// with the quantity currently held in the cart for that product.
type ProductView struct {
	Product
	InCart bool `json:"in_cart"`
	// CartQuantity is the quantity of this product already in the cart.
	CartQuantity int `json:"cart_quantity"`
	// CanAdd is false when the product is unavailable or the cart already
	// holds its full stock.
	CanAdd bool `json:"can_add"`
}
