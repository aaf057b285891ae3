package storage_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/storage"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCartKey = "bakeryCart"

func TestRedisStore_Save(t *testing.T) {
	ctx := t.Context()

	t.Run("Writes Cart JSON Under The Key", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		store := storage.NewRedisStore(client, testCartKey)
		lines := sampleLines()

		data, err := json.Marshal(lines)
		require.NoError(t, err)

		mock.ExpectSet(testCartKey, data, 0).SetVal("OK")

		// Act
		err = store.Save(ctx, lines)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Returns Error When Redis Set Fails", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := storage.NewRedisStore(client, testCartKey)
		lines := sampleLines()

		data, err := json.Marshal(lines)
		require.NoError(t, err)

		mock.ExpectSet(testCartKey, data, 0).SetErr(errors.New("connection refused"))

		err = store.Save(ctx, lines)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set key")
	})
}

func TestRedisStore_Load(t *testing.T) {
	ctx := t.Context()

	t.Run("Round Trips Persisted Lines", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := storage.NewRedisStore(client, testCartKey)
		lines := sampleLines()

		data, err := json.Marshal(lines)
		require.NoError(t, err)

		mock.ExpectGet(testCartKey).SetVal(string(data))

		loaded, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, lines, loaded)
	})

	t.Run("Missing Key Loads Empty", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := storage.NewRedisStore(client, testCartKey)

		mock.ExpectGet(testCartKey).RedisNil()

		loaded, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("Malformed Value Loads Empty", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := storage.NewRedisStore(client, testCartKey)

		mock.ExpectGet(testCartKey).SetVal("{not json")

		loaded, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("Returns Error When Redis Get Fails", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := storage.NewRedisStore(client, testCartKey)

		mock.ExpectGet(testCartKey).SetErr(redis.ErrClosed)

		loaded, err := store.Load(ctx)

		require.Error(t, err)
		assert.Nil(t, loaded)
	})
}
