package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/api/middleware"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/metrics"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/order"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/utils/response"
)

type CheckoutHandler struct {
	orderService *order.Service
	validator    *validator.Validate
}

func NewCheckoutHandler(orderService *order.Service) *CheckoutHandler {
	return &CheckoutHandler{
		orderService: orderService,
		validator:    validator.New(),
	}
}

func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		result, err := h.orderService.Checkout(r.Context(), &req)
		if err != nil {
			metrics.OrdersPlaced.WithLabelValues("failed").Inc()
			logger.Warn("Checkout failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		metrics.OrdersPlaced.WithLabelValues("ok").Inc()

		response.Success(w, http.StatusCreated, result)

	}
}
