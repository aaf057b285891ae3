package storage

import (
	"context"
	"fmt"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/config"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/telemetry"
	"github.com/redis/go-redis/v9"
)

// Store persists the cart line sequence under a single fixed key.
//
// Save must be atomic from the caller's perspective: a failed write leaves
// the previously persisted value intact. Load never fails on bad stored
// state; a missing key or malformed payload yields an empty cart so corrupted
// local state cannot take the storefront down.
type Store interface {
	Save(ctx context.Context, lines []models.CartLine) error
	Load(ctx context.Context) ([]models.CartLine, error)
	Close() error
}

// New selects the persistence backend from config.
func New(cfg *config.Config) (Store, error) {

	switch cfg.Storage.Backend {
	case config.StorageBackendFile:
		return NewFileStore(cfg.Storage.FilePath), nil

	case config.StorageBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConnect.Addr,
			Username: cfg.RedisConnect.Username,
			Password: cfg.RedisConnect.Password,
			DB:       cfg.RedisConnect.DB,
		})

		return NewRedisStore(client, cfg.Storage.CartKey), nil

	case config.StorageBackendPostgres:
		db, err := telemetry.OpenDB("postgres", cfg.Database.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		return NewPostgresStore(db, cfg.Storage.CartKey), nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}
