package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/config"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ProductRecord is the upstream shape of a product as returned by
// GET /products. Prices come back as decimal strings and images as a list of
// CDN URLs; the catalog maps this into the local models.Product shape.
type ProductRecord struct {
	ID          int64    `json:"id_product"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	ImageURLs   []string `json:"image_urls"`
	Stock       int      `json:"stock"`
	Available   bool     `json:"available"`
	Status      string   `json:"status"`
}

type OrderRecord struct {
	ID     int64  `json:"id_order"`
	Status string `json:"status"`
}

type Client struct {
	baseURL      string
	productsPath string
	ordersPath   string
	httpClient   *http.Client
}

func NewClient(cfg *config.UpstreamAPI) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		productsPath: cfg.ProductsPath,
		ordersPath:   cfg.OrdersPath,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) GetProducts(ctx context.Context) ([]ProductRecord, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.productsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("building products request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching products: unexpected status %d", resp.StatusCode)
	}

	var records []ProductRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding products response: %w", err)
	}

	return records, nil
}

// CreateOrder submits the order payload upstream. A fresh idempotency key is
// attached so a duplicate manual retry cannot create two orders.
func (c *Client) CreateOrder(ctx context.Context, payload *models.OrderPayload) (*OrderRecord, error) {

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.ordersPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building order request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submitting order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, fmt.Errorf("submitting order: status %d: %s", resp.StatusCode, msg)
	}

	var record OrderRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		// Some backends answer 201 with an empty body; the order went through.
		return &OrderRecord{}, nil
	}

	return &record, nil
}
