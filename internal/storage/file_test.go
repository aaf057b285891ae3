package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLines() []models.CartLine {
	return []models.CartLine{
		{ProductID: 2, Name: "Muffin de Arándanos", Price: 2.99, ImageURL: "https://example.com/muffin.jpg", Quantity: 1},
		{ProductID: 1, Name: "Croissant de Chocolate", Price: 3.99, ImageURL: "https://example.com/croissant.jpg", Quantity: 3},
	}
}

func TestFileStore(t *testing.T) {
	ctx := t.Context()

	t.Run("Save And Load Round Trip Preserves Order", func(t *testing.T) {
		// Arrange
		store := storage.NewFileStore(filepath.Join(t.TempDir(), "cart.json"))
		lines := sampleLines()

		// Act
		require.NoError(t, store.Save(ctx, lines))
		loaded, err := store.Load(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, lines, loaded)
	})

	t.Run("Missing File Loads Empty", func(t *testing.T) {
		store := storage.NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

		loaded, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("Malformed File Loads Empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		store := storage.NewFileStore(path)

		loaded, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("Save Overwrites Previous State", func(t *testing.T) {
		store := storage.NewFileStore(filepath.Join(t.TempDir(), "cart.json"))

		require.NoError(t, store.Save(ctx, sampleLines()))
		require.NoError(t, store.Save(ctx, []models.CartLine{}))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("Save Creates Missing Directories", func(t *testing.T) {
		store := storage.NewFileStore(filepath.Join(t.TempDir(), "nested", "dir", "cart.json"))

		require.NoError(t, store.Save(ctx, sampleLines()))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, loaded, 2)
	})
}
