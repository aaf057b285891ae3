package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
)

// FileStore keeps the cart in a single local JSON file. Writes go through a
// temp file plus rename, so a crash mid-write leaves the previous cart
// intact.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(_ context.Context, lines []models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart lines: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cart file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to write cart file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to close cart file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to replace cart file: %w", err)
	}

	return nil
}

func (s *FileStore) Load(_ context.Context) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.CartLine{}, nil
		}

		slog.Warn("Could not read persisted cart, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()))

		return []models.CartLine{}, nil
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		slog.Warn("Persisted cart is malformed, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()))

		return []models.CartLine{}, nil
	}

	return lines, nil
}

func (s *FileStore) Close() error {
	return nil
}
