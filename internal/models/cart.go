package models

// CartLine is one product's entry in the cart. Name, Price and ImageURL are
// snapshots copied from the catalog when the line is added, so the cart keeps
// rendering correctly even if a catalog reload drops or changes the product.
//
// The JSON tags are the persisted wire format: a flat array of these objects
// under a single storage key.
type CartLine struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	// Delta is the signed quantity change: +1 from the catalog's add button,
	// -1 from the decrement button. Zero is rejected.
	Delta int `json:"delta" validate:"required"`
}
