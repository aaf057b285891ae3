package cart

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/catalog"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/errors"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/storage"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/utils"
)

// Observer is notified after every accepted mutation, once the new state has
// been persisted. It receives a snapshot of the resulting lines.
type Observer func(lines []models.CartLine)

// Store is the sole authority over cart contents. Per product the line moves
// Absent -> Present(1..stock) -> Absent, only through the operations below;
// a line with quantity <= 0 never exists.
//
// Every accepted mutation persists synchronously before observers run, so
// the durable state can never lag a completed operation. If the persist
// fails, the in-memory state is rolled back and the mutation is reported as
// a persistence error: the cart is never left half-applied.
type Store struct {
	mu        sync.Mutex
	lines     []models.CartLine
	catalog   *catalog.Catalog
	persister storage.Store
	observers []Observer

	stockCheck bool
	maxItems   int
	timeout    time.Duration
}

type Options struct {
	// StockValidation rejects additions that would exceed product stock.
	StockValidation bool
	// MaxItems caps the total quantity across all lines. Zero disables the cap.
	MaxItems int
	// StorageTimeout bounds each persistence call. Zero uses the default.
	StorageTimeout time.Duration
}

func NewStore(cat *catalog.Catalog, persister storage.Store, opts Options) *Store {
	return &Store{
		catalog:    cat,
		persister:  persister,
		stockCheck: opts.StockValidation,
		maxItems:   opts.MaxItems,
		timeout:    opts.StorageTimeout,
	}
}

// Restore loads the persisted cart. Any read failure is absorbed: the cart
// starts empty rather than failing the session. Persisted lines that violate
// the quantity invariant are dropped.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loadCtx, cancel := utils.WithStorageTimeout(ctx, s.timeout)
	defer cancel()

	lines, err := s.persister.Load(loadCtx)
	if err != nil {
		slog.Warn("Could not restore persisted cart, starting empty",
			slog.String("error", err.Error()))
		s.lines = nil

		return
	}

	s.lines = slices.DeleteFunc(lines, func(l models.CartLine) bool {
		return l.Quantity <= 0
	})

	slog.Info("Cart restored", slog.Int("lines", len(s.lines)))
}

// Subscribe registers an observer. Registration is expected at wiring time,
// before mutations start.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}

// AddOrIncrement applies a signed quantity change for a product.
//
//   - the product must resolve in the catalog;
//   - a positive delta requires effective availability and, when stock
//     validation is on, must not push the line past the product's stock;
//     over-stock additions are rejected outright, never partially applied;
//   - a resulting quantity <= 0 removes the line;
//   - a negative delta on an absent line is a no-op.
//
// On success it returns the resulting line, or nil when the line was removed.
func (s *Store) AddOrIncrement(ctx context.Context, productID int64, delta int) (*models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.catalog.Lookup(productID)
	if !ok {
		return nil, errors.ProductNotFoundError(productID)
	}

	idx := s.indexOf(productID)

	current := 0
	if idx >= 0 {
		current = s.lines[idx].Quantity
	}

	newQuantity := current + delta

	if newQuantity <= 0 {
		if idx < 0 {
			// Decrementing a line that does not exist.
			return nil, nil
		}

		next := slices.Delete(slices.Clone(s.lines), idx, idx+1)
		if err := s.commit(ctx, next); err != nil {
			return nil, err
		}

		return nil, nil
	}

	if delta > 0 {
		if !product.Purchasable() {
			return nil, errors.ProductUnavailableError(product.Name)
		}

		if s.stockCheck && newQuantity > product.Stock {
			return nil, errors.StockExceededError(product.Name, product.Stock-current)
		}

		if s.maxItems > 0 && s.totalItemsLocked()-current+newQuantity > s.maxItems {
			return nil, errors.CartLimitExceededError(s.maxItems)
		}
	}

	// Upsert with snapshot fields refreshed from the current catalog entry.
	line := models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  newQuantity,
	}

	next := slices.Clone(s.lines)
	if idx >= 0 {
		next[idx] = line
	} else {
		next = append(next, line)
	}

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	return &line, nil
}

// Remove deletes the product's line. Removing an absent line is a no-op, not
// an error.
func (s *Store) Remove(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return nil
	}

	next := slices.Delete(slices.Clone(s.lines), idx, idx+1)

	return s.commit(ctx, next)
}

// Clear empties the cart. Used after a confirmed order placement.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, []models.CartLine{})
}

// Lines returns an ordered read-only snapshot of the cart.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.lines)
}

func (s *Store) LineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}

// TotalItemCount is the sum of all line quantities.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalItemsLocked()
}

// Quantity reports the cart quantity for one product, 0 when absent.
func (s *Store) Quantity(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(productID); idx >= 0 {
		return s.lines[idx].Quantity
	}

	return 0
}

// commit persists the candidate state and, only if that succeeds, makes it
// current and notifies observers. Callers must hold the lock.
func (s *Store) commit(ctx context.Context, next []models.CartLine) error {

	saveCtx, cancel := utils.WithStorageTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.persister.Save(saveCtx, next); err != nil {
		return errors.PersistenceError("Failed to persist cart").WithError(err)
	}

	s.lines = next

	snapshot := slices.Clone(next)
	for _, fn := range s.observers {
		fn(snapshot)
	}

	return nil
}

func (s *Store) indexOf(productID int64) int {
	return slices.IndexFunc(s.lines, func(l models.CartLine) bool {
		return l.ProductID == productID
	})
}

func (s *Store) totalItemsLocked() int {
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}

	return total
}
