package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
)

// PostgresStore persists the cart as one JSONB row keyed by the cart key.
//
// Schema:
//
//	CREATE TABLE carts (
//	    cart_key   TEXT PRIMARY KEY,
//	    items      JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PostgresStore struct {
	DB  *sql.DB
	key string
}

func NewPostgresStore(db *sql.DB, key string) *PostgresStore {
	return &PostgresStore{DB: db, key: key}
}

func (s *PostgresStore) Save(ctx context.Context, lines []models.CartLine) error {

	itemsJSON, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart lines: %w", err)
	}

	query := `
		INSERT INTO carts (cart_key, items, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (cart_key)
		DO UPDATE SET items = EXCLUDED.items, updated_at = NOW()
	`

	if _, err := s.DB.ExecContext(ctx, query, s.key, itemsJSON); err != nil {
		return fmt.Errorf("failed to upsert cart: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load(ctx context.Context) ([]models.CartLine, error) {

	query := `
		SELECT items
		FROM carts
		WHERE cart_key = $1
	`

	var itemsJSON []byte

	err := s.DB.QueryRowContext(ctx, query, s.key).Scan(&itemsJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return []models.CartLine{}, nil
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal(itemsJSON, &lines); err != nil {
		slog.Warn("Persisted cart is malformed, starting empty",
			slog.String("key", s.key),
			slog.String("error", err.Error()))

		return []models.CartLine{}, nil
	}

	return lines, nil
}

func (s *PostgresStore) Close() error {
	return s.DB.Close()
}
