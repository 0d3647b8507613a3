package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/cake-storefront/docs"
	"github.com/aaravmahajanofficial/cake-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cake-storefront/internal/cache"
	"github.com/aaravmahajanofficial/cake-storefront/internal/config"
	"github.com/aaravmahajanofficial/cake-storefront/internal/health"
	"github.com/aaravmahajanofficial/cake-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/cake-storefront/internal/ratelimit"
	service "github.com/aaravmahajanofficial/cake-storefront/internal/services"
	"github.com/aaravmahajanofficial/cake-storefront/internal/session"
	"github.com/aaravmahajanofficial/cake-storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/cake-storefront/pkg/bakery"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Cake Storefront API
//	@version					1.0
//	@description				Storefront for the bakery: catalog, session carts, checkout, order tracking and the admin dashboard.
//	@host						localhost:8090
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {

	// Load config
	cfg := config.MustLoad()

	// Logger setup
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Tracing setup
	shutdownTracer, err := telemetry.InitTracer(ctx, &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Cache and rate limit setup; both need redis
	catalogCache := cache.NewNoopCache()

	var checkoutLimit func(http.Handler) http.Handler = func(next http.Handler) http.Handler { return next }

	if cfg.RedisConnect.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, &cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}

		catalogCache = cache.NewRedisCache(redisClient, &cfg.Cache)
		checkoutLimit = middleware.NewRateLimitMiddleware(
			ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit),
			ratelimit.CheckoutKeyPrefix,
		).PerSession
	}

	defer func() {
		if err := catalogCache.Close(); err != nil {
			slog.Error("⚠️ Error closing cache connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Cache connection closed")
		}
	}()

	// Session registry
	registry, err := session.NewRegistry(cfg.Session.MaxSessions)
	if err != nil {
		slog.Error("❌ Error creating the session registry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	bakeryClient := bakery.NewClient(cfg.BakeryAPI.BaseURL, cfg.BakeryAPI.Timeout, bakery.WithLogger(logger))
	catalogService := service.NewCatalogService(bakeryClient, catalogCache)
	checkoutService := service.NewCheckoutService(bakeryClient, cfg.Checkout.SubmitTimeout)
	trackingService := service.NewTrackingService(bakeryClient)
	dashboardService := service.NewDashboardService(bakeryClient)
	cakeHandler := handlers.NewCakeHandler(catalogService)
	cartHandler := handlers.NewCartHandler(catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(trackingService)
	adminHandler := handlers.NewAdminHandler(dashboardService, catalogService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.AdminJWTKey))
	sessionMiddleware := middleware.NewSessionMiddleware(registry, cfg.Session.CookieName, cfg.Session.Secure)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{Bakery: bakeryClient})
	if err != nil {
		slog.Error("❌ Error creating the health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("version", health.Version),
		slog.String("bakeryApi", cfg.BakeryAPI.BaseURL),
		slog.Bool("redis", cfg.RedisConnect.Enabled),
	)

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/cakes", cakeHandler.ListCakes())
	routerMux.HandleFunc("GET /api/v1/cakes/{id}", cakeHandler.GetCake())
	routerMux.Handle("GET /api/v1/cart", sessionMiddleware.Attach(cartHandler.GetCart()))
	routerMux.Handle("DELETE /api/v1/cart", sessionMiddleware.Attach(cartHandler.ClearCart()))
	routerMux.Handle("POST /api/v1/cart/items", sessionMiddleware.Attach(cartHandler.AddItem()))
	routerMux.Handle("PUT /api/v1/cart/items/{id}", sessionMiddleware.Attach(cartHandler.UpdateItem()))
	routerMux.Handle("DELETE /api/v1/cart/items/{id}", sessionMiddleware.Attach(cartHandler.RemoveItem()))
	routerMux.Handle("GET /api/v1/cart/events", sessionMiddleware.Attach(cartHandler.Events()))
	routerMux.Handle("POST /api/v1/checkout", sessionMiddleware.Attach(checkoutLimit(checkoutHandler.Checkout())))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.TrackOrder())
	routerMux.Handle("GET /api/v1/admin/stats", authMiddleware.RequireAdmin(adminHandler.Stats()))
	routerMux.Handle("GET /api/v1/admin/orders", authMiddleware.RequireAdmin(adminHandler.ListOrders()))
	routerMux.Handle("PUT /api/v1/admin/orders/{id}/status", authMiddleware.RequireAdmin(adminHandler.UpdateOrderStatus()))
	routerMux.Handle("GET /api/v1/admin/cakes", authMiddleware.RequireAdmin(adminHandler.ListCakes()))
	routerMux.Handle("POST /api/v1/admin/cakes", authMiddleware.RequireAdmin(adminHandler.CreateCake()))
	routerMux.Handle("PUT /api/v1/admin/cakes/{id}", authMiddleware.RequireAdmin(adminHandler.UpdateCake()))
	routerMux.Handle("DELETE /api/v1/admin/cakes/{id}", authMiddleware.RequireAdmin(adminHandler.DeleteCake()))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining; metrics sits next to the mux so it sees the matched pattern
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)
	handler = middleware.Logging(handler)

	// No write timeout: cart event streams stay open
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
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
}
