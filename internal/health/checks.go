package health

import (
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthHTTP "github.com/hellofresh/health-go/v5/checks/http"
	healthPostgres "github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/config"
)

const version = "1.0.0"

// NewHealthHandler wires the storefront health endpoint: the upstream
// products API plus whichever persistence backend the cart uses.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	checks := []health.Config{}

	if cfg.Features.APIIntegration {
		checks = append(checks, health.Config{
			Name:      "products-api",
			Timeout:   5 * time.Second,
			SkipOnErr: true, // the storefront falls back to local data
			Check: healthHTTP.New(healthHTTP.Config{
				URL: cfg.UpstreamAPI.BaseURL + cfg.UpstreamAPI.ProductsPath,
			}),
		})
	}

	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	case config.StorageBackendPostgres:
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: healthPostgres.New(healthPostgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
