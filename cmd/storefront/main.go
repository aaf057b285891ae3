package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/api"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/api/handlers"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/api/middleware"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/cart"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/catalog"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/config"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/health"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/metrics"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/order"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/storage"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/telemetry"
	"github.com/radamesvaz/hellfire-gatekeeper-fe/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing
	shutdownTracing, err := telemetry.InitTracerProvider(ctx, "storefront", version)
	if err != nil {
		slog.Warn("⚠️ Tracing disabled", slog.String("error", err.Error()))
		shutdownTracing = func(context.Context) error { return nil }
	}

	// Product catalog: upstream API with local fallback
	apiClient := api.NewClient(&cfg.UpstreamAPI)
	cat := catalog.New(apiClient, cfg.Features.APIIntegration)
	cat.Load(ctx)

	// Cart persistence
	store, err := storage.New(cfg)
	if err != nil {
		slog.Error("❌ Error setting up cart storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("⚠️ Error closing cart storage", slog.String("error", err.Error()))
		}
	}()

	cartStore := cart.NewStore(cat, store, cart.Options{
		StockValidation: cfg.Features.StockValidation,
		MaxItems:        cfg.App.MaxCartItems,
		StorageTimeout:  cfg.Storage.Timeout,
	})
	cartStore.Restore(ctx)

	// The single change subscriber: keeps the exported cart gauge in sync
	// with the canonical state after every mutation.
	cartStore.Subscribe(func(lines []models.CartLine) {
		total := 0
		for _, line := range lines {
			total += line.Quantity
		}

		metrics.CartItems.Set(float64(total))
	})

	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	orderService := order.NewService(cartStore, apiClient, emailService, cfg)

	catalogHandler := handlers.NewCatalogHandler(cat, cartStore)
	cartHandler := handlers.NewCartHandler(cartStore, cfg.App.TaxRate)
	checkoutHandler := handlers.NewCheckoutHandler(orderService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Backend),
		slog.Int("products", cat.Len()),
		slog.Int("cart_lines", cartStore.LineCount()))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("POST /api/v1/products/refresh", catalogHandler.RefreshProducts())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Checkout())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
