package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/api/middleware"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/cart"
	appErrors "github.com/radamesvaz/hellfire-gatekeeper-fe/internal/errors"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/metrics"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/utils/response"
)

type CartHandler struct {
	cartStore *cart.Store
	taxRate   float64
	validator *validator.Validate
}

func NewCartHandler(cartStore *cart.Store, taxRate float64) *CartHandler {
	return &CartHandler{
		cartStore: cartStore,
		taxRate:   taxRate,
		validator: validator.New(),
	}
}

func (h *CartHandler) summary() cart.Summary {
	return cart.Project(h.cartStore.Lines(), h.taxRate)
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.summary())

	}
}

// UpdateItem applies a signed quantity change for one product: the single
// entry point behind the +1 / -1 buttons and "add to cart".
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		line, err := h.cartStore.AddOrIncrement(r.Context(), req.ProductID, req.Delta)
		if err != nil {
			metrics.CartOperations.WithLabelValues("update", "rejected").Inc()
			logger.Warn("Cart update rejected",
				"product_id", req.ProductID,
				"delta", req.Delta,
				"error", err.Error())
			response.Error(w, err)

			return
		}

		metrics.CartOperations.WithLabelValues("update", "ok").Inc()

		quantity := 0
		if line != nil {
			quantity = line.Quantity
		}

		logger.Info("Cart updated",
			"product_id", req.ProductID,
			"delta", req.Delta,
			"quantity", quantity)

		response.Success(w, http.StatusOK, h.summary())

	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		idStr := r.PathValue("id")

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			response.Error(w, appErrors.BadRequestError(fmt.Sprintf("Invalid product id: %q", idStr)))

			return
		}

		if err := h.cartStore.Remove(r.Context(), id); err != nil {
			metrics.CartOperations.WithLabelValues("remove", "rejected").Inc()
			response.Error(w, err)

			return
		}

		metrics.CartOperations.WithLabelValues("remove", "ok").Inc()

		response.Success(w, http.StatusOK, h.summary())

	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.cartStore.Clear(r.Context()); err != nil {
			metrics.CartOperations.WithLabelValues("clear", "rejected").Inc()
			response.Error(w, err)

			return
		}

		metrics.CartOperations.WithLabelValues("clear", "ok").Inc()

		response.Success(w, http.StatusOK, h.summary())

	}
}
