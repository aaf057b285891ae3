package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/api/handlers"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/cart"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/catalog"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listProducts(t *testing.T, mux *http.ServeMux) []models.ProductView {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    []models.ProductView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.True(t, envelope.Success)

	return envelope.Data
}

func TestCatalogHandler_ListProducts(t *testing.T) {

	newMux := func(t *testing.T) (*http.ServeMux, *cart.Store) {
		t.Helper()

		cat := catalog.NewStatic(handlerTestProducts())
		cartStore := cart.NewStore(cat, storage.NewFileStore(filepath.Join(t.TempDir(), "cart.json")), cart.Options{StockValidation: true})

		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v1/products", handlers.NewCatalogHandler(cat, cartStore).ListProducts())

		return mux, cartStore
	}

	t.Run("Serves Catalog With Cart Quantities", func(t *testing.T) {
		// Arrange
		mux, cartStore := newMux(t)
		_, err := cartStore.AddOrIncrement(t.Context(), 1, 2)
		require.NoError(t, err)

		// Act
		views := listProducts(t, mux)

		// Assert
		require.Len(t, views, 3)
		assert.True(t, views[0].InCart)
		assert.Equal(t, 2, views[0].CartQuantity)
		assert.True(t, views[0].CanAdd)
		assert.False(t, views[1].InCart)
		assert.Zero(t, views[1].CartQuantity)
	})

	t.Run("Unavailable Product Cannot Be Added", func(t *testing.T) {
		mux, _ := newMux(t)

		views := listProducts(t, mux)

		require.Len(t, views, 3)
		assert.False(t, views[2].CanAdd)
	})

	t.Run("Full Stock In Cart Blocks Further Adds", func(t *testing.T) {
		mux, cartStore := newMux(t)
		_, err := cartStore.AddOrIncrement(t.Context(), 2, 2)
		require.NoError(t, err)

		views := listProducts(t, mux)

		require.Len(t, views, 3)
		assert.Equal(t, 2, views[1].CartQuantity)
		assert.False(t, views[1].CanAdd)
	})
}
