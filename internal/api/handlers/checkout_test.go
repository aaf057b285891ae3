package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/api"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/api/handlers"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/cart"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/catalog"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/config"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/order"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutMux(t *testing.T, upstream http.HandlerFunc) (*http.ServeMux, *cart.Store) {
	t.Helper()

	cat := catalog.NewStatic(handlerTestProducts())
	cartStore := cart.NewStore(cat, storage.NewFileStore(filepath.Join(t.TempDir(), "cart.json")), cart.Options{StockValidation: true})

	cfg := &config.Config{
		App:      config.App{Name: "Sweet Dreams Bakery", TaxRate: testTaxRate},
		WhatsApp: config.WhatsApp{Number: "584121234567"},
	}

	var client *api.Client
	if upstream != nil {
		server := httptest.NewServer(upstream)
		t.Cleanup(server.Close)

		client = api.NewClient(&config.UpstreamAPI{
			BaseURL:    server.URL,
			OrdersPath: "/api/orders",
			Timeout:    5 * time.Second,
		})
		cfg.Features.APIIntegration = true
	}

	checkoutHandler := handlers.NewCheckoutHandler(order.NewService(cartStore, client, nil, cfg))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Checkout())

	return mux, cartStore
}

func checkoutBody(t *testing.T) *strings.Reader {
	t.Helper()

	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	return strings.NewReader(fmt.Sprintf(`{
		"customer_name": "María Pérez",
		"email": "maria@example.com",
		"phone": "584121234567",
		"delivery_date": %q
	}`, date))
}

func seedCart(t *testing.T, cartStore *cart.Store) {
	t.Helper()

	_, err := cartStore.AddOrIncrement(t.Context(), 1, 2)
	require.NoError(t, err)
}

func TestCheckoutHandler(t *testing.T) {

	t.Run("Places Order And Returns Result", func(t *testing.T) {
		// Arrange
		mux, cartStore := newCheckoutMux(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(api.OrderRecord{ID: 7, Status: "pending"})
		})
		seedCart(t, cartStore)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", checkoutBody(t))
		rec := httptest.NewRecorder()

		// Act
		mux.ServeHTTP(rec, req)

		// Assert
		require.Equal(t, http.StatusCreated, rec.Code)

		var envelope struct {
			Success bool                  `json:"success"`
			Data    models.CheckoutResult `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		require.True(t, envelope.Success)
		assert.Equal(t, int64(7), envelope.Data.OrderID)
		assert.True(t, envelope.Data.Submitted)
		assert.NotEmpty(t, envelope.Data.WhatsAppLink)

		assert.Zero(t, cartStore.LineCount())
	})

	t.Run("Empty Cart Returns Bad Request", func(t *testing.T) {
		mux, _ := newCheckoutMux(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", checkoutBody(t))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "EMPTY_CART", envelope.Error.Code)
	})

	t.Run("Invalid Form Fails Validation", func(t *testing.T) {
		mux, cartStore := newCheckoutMux(t, nil)
		seedCart(t, cartStore)

		body := strings.NewReader(`{"customer_name": "M", "email": "not-an-email", "phone": "123", "delivery_date": "soon"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", body)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
		assert.NotEmpty(t, envelope.Error.Details)

		assert.Equal(t, 1, cartStore.LineCount())
	})

	t.Run("Upstream Failure Returns Bad Gateway And Keeps Cart", func(t *testing.T) {
		mux, cartStore := newCheckoutMux(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		})
		seedCart(t, cartStore)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", checkoutBody(t))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadGateway, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "ORDER_SUBMISSION_FAILED", envelope.Error.Code)

		assert.Equal(t, 1, cartStore.LineCount())
	})
}
