package app

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/elitemotors/storefront/internal/adapter/dealership"
	"github.com/elitemotors/storefront/internal/adapter/handler/http"
	"github.com/elitemotors/storefront/internal/adapter/logger"
	"github.com/elitemotors/storefront/internal/adapter/prometheus"
	"github.com/elitemotors/storefront/internal/adapter/redis"
	"github.com/elitemotors/storefront/internal/adapter/telemetry"
	"github.com/elitemotors/storefront/internal/config"
	"github.com/elitemotors/storefront/internal/core/ports"
	"github.com/elitemotors/storefront/internal/core/services"

	"github.com/go-openapi/strfmt"
	redisClient "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	Telemetry    *telemetry.Provider
	HTTPRouter   *http.Router
	server       *nethttp.Server
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Tracing
	tracing, err := telemetry.NewProvider(ctx, telemetry.Options{
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
		Exporter:    cfg.Telemetry.Exporter,
		Endpoint:    cfg.Telemetry.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init tracing: %w", err)
	}

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		_ = tracing.Shutdown(ctx)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)
	sessionStore := redis.NewSessionStore(redisConn)

	// Validate
	validate := services.NewValidator()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Dealership API client init
	transport := dealership.NewTransport(
		cfg.DealershipAPI.Host,
		cfg.DealershipAPI.BasePath,
		cfg.DealershipAPI.Schemes(),
		cfg.DealershipAPI.TimeoutDuration(),
	)
	api := dealership.New(transport, strfmt.Default, loggerAdapter)

	// Services
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, loggerAdapter)
	authService := services.NewAuthService(api, sessionStore, tokenService, loggerAdapter, validate, cfg.Token.TTL())
	catalog := services.NewCatalog(api, loggerAdapter, metrics)
	favoritesService := services.NewFavoritesService(api, loggerAdapter, cacheAdapter)
	inventoryService := services.NewInventoryService(catalog, favoritesService, loggerAdapter)
	carService := services.NewCarService(api, loggerAdapter, validate, cacheAdapter)
	testDriveService := services.NewTestDriveService(api, api, loggerAdapter, validate)
	userService := services.NewUserService(api, loggerAdapter)

	// HTTP Handlers
	inventoryHandler := http.NewInventoryHandler(inventoryService, loggerAdapter, metrics)
	carHandler := http.NewCarHandler(carService, loggerAdapter, metrics)
	authHandler := http.NewAuthHandler(authService, loggerAdapter, metrics)
	favoritesHandler := http.NewFavoritesHandler(favoritesService, loggerAdapter, metrics)
	testDriveHandler := http.NewTestDriveHandler(testDriveService, loggerAdapter, metrics)
	userHandler := http.NewUserHandler(userService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		authService,
		metrics.Handler(),
		inventoryHandler,
		carHandler,
		authHandler,
		favoritesHandler,
		testDriveHandler,
		userHandler,
	)
	if err != nil {
		redisConn.Close()
		_ = tracing.Shutdown(ctx)
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	listenAddr := fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port)
	server := &nethttp.Server{
		Addr:              listenAddr,
		Handler:           otelhttp.NewHandler(router.Engine(), cfg.App.Name),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		Telemetry:    tracing,
		HTTPRouter:   router,
		server:       server,
	}, nil
}

// Runs all services
func (a *App) Run() error {
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": a.server.Addr,
	})

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.server.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Flush spans
	if err := a.Telemetry.Shutdown(ctx); err != nil {
		a.Logger.Error("Tracer shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
