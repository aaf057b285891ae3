package handlers

import (
	"net/http"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/cart"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/catalog"
	appErrors "github.com/radamesvaz/hellfire-gatekeeper-fe/internal/errors"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/utils/response"
)

type CatalogHandler struct {
	catalog   *catalog.Catalog
	cartStore *cart.Store
}

func NewCatalogHandler(cat *catalog.Catalog, cartStore *cart.Store) *CatalogHandler {
	return &CatalogHandler{catalog: cat, cartStore: cartStore}
}

// ListProducts serves the catalog enriched with the in-cart quantity per
// product, the way the product cards render it.
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products := h.catalog.Products()
		views := make([]models.ProductView, 0, len(products))

		for _, p := range products {
			quantity := h.cartStore.Quantity(p.ID)

			views = append(views, models.ProductView{
				Product:      p,
				InCart:       quantity > 0,
				CartQuantity: quantity,
				CanAdd:       p.Purchasable() && quantity < p.Stock,
			})
		}

		response.Success(w, http.StatusOK, views)

	}
}

func (h *CatalogHandler) RefreshProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.catalog.Refresh(r.Context()); err != nil {
			response.Error(w, appErrors.InternalError("Failed to refresh products").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, map[string]int{"count": h.catalog.Len()})

	}
}
