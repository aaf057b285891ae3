package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/microcosm-cc/bluemonday"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/api"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
)

// Catalog holds the read-only product list the cart validates against.
//
// The whole snapshot (ordered slice + id index) is swapped atomically on
// refresh, so a reader always sees either the previous or the new product
// list, never a partially loaded one. Products inside a snapshot are
// immutable.
type Catalog struct {
	snap     atomic.Pointer[snapshot]
	client   *api.Client
	useAPI   bool
	sanitize *bluemonday.Policy
}

type snapshot struct {
	products []models.Product
	byID     map[int64]models.Product
}

func New(client *api.Client, useAPI bool) *Catalog {
	c := &Catalog{
		client:   client,
		useAPI:   useAPI && client != nil,
		sanitize: bluemonday.StrictPolicy(),
	}
	c.swap(localProducts())

	return c
}

// NewStatic builds a catalog from a fixed product list, bypassing the
// upstream API entirely.
func NewStatic(products []models.Product) *Catalog {
	c := &Catalog{sanitize: bluemonday.StrictPolicy()}
	c.swap(products)

	return c
}

// Load performs the startup load: products from the upstream API when
// integration is enabled, otherwise the embedded local list. An API failure
// falls back to local data instead of erroring so the storefront keeps
// working offline.
func (c *Catalog) Load(ctx context.Context) {

	if !c.useAPI {
		slog.Info("Using local products data", slog.Int("count", c.Len()))

		return
	}

	if err := c.Refresh(ctx); err != nil {
		slog.Error("Failed to load products from API, falling back to local data",
			slog.String("error", err.Error()))
		c.swap(localProducts())
	}
}

// Refresh re-fetches the catalog from the upstream API and swaps the
// snapshot. On error the current snapshot stays in place.
func (c *Catalog) Refresh(ctx context.Context) error {

	if !c.useAPI {
		return fmt.Errorf("api integration is disabled")
	}

	records, err := c.client.GetProducts(ctx)
	if err != nil {
		return err
	}

	products := make([]models.Product, 0, len(records))

	for _, record := range records {
		// Only active products reach the storefront.
		if record.Status != models.ProductStatusActive {
			continue
		}

		products = append(products, c.toProduct(record))
	}

	c.swap(products)
	slog.Info("Products loaded from API",
		slog.Int("active", len(products)),
		slog.Int("total", len(records)))

	return nil
}

func (c *Catalog) toProduct(record api.ProductRecord) models.Product {

	price, err := strconv.ParseFloat(record.Price, 64)
	if err != nil {
		slog.Warn("Invalid price in product record, defaulting to 0",
			slog.Int64("product_id", record.ID),
			slog.String("price", record.Price))

		price = 0
	}

	imageURL := fallbackImageURL
	if len(record.ImageURLs) > 0 {
		imageURL = record.ImageURLs[0]
	}

	return models.Product{
		ID:          record.ID,
		Name:        c.sanitize.Sanitize(record.Name),
		Description: c.sanitize.Sanitize(record.Description),
		Price:       price,
		ImageURL:    imageURL,
		Stock:       record.Stock,
		Available:   record.Available,
		Status:      record.Status,
	}
}

func (c *Catalog) swap(products []models.Product) {
	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	c.snap.Store(&snapshot{products: products, byID: byID})
}

func (c *Catalog) Lookup(id int64) (models.Product, bool) {
	p, ok := c.snap.Load().byID[id]

	return p, ok
}

// Products returns the ordered snapshot list. The slice must not be mutated.
func (c *Catalog) Products() []models.Product {
	return c.snap.Load().products
}

func (c *Catalog) Len() int {
	return len(c.snap.Load().products)
}
