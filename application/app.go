package application

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do/v2"
	"go.uber.org/zap"

	"github.com/KOMKZ/go-pubsite-service/cache"
	"github.com/KOMKZ/go-pubsite-service/database"
	"github.com/KOMKZ/go-pubsite-service/health"
	"github.com/KOMKZ/go-pubsite-service/httpx"
	"github.com/KOMKZ/go-pubsite-service/logger"
	"github.com/KOMKZ/go-pubsite-service/middleware"
	"github.com/KOMKZ/go-pubsite-service/model"
	"github.com/KOMKZ/go-pubsite-service/publisher"
	"github.com/KOMKZ/go-pubsite-service/redis"
	"github.com/KOMKZ/go-pubsite-service/website"
)

// App the assembled service
type App struct {
	config   *Config
	injector *do.RootScope
	logger   *logger.CtxZapLogger
	engine   *gin.Engine
	server   *http.Server
}

// New assembles the application from configuration.
// Every component registers in the injector so shutdown releases them in
// reverse dependency order.
func New(cfg *Config) (*App, error) {
	injector := do.New()

	logManager := logger.NewManager(cfg.Logger)
	do.ProvideValue(injector, logManager)
	appLog := logManager.GetLogger("application")

	dbManager, err := database.NewManager(cfg.Database, logManager.GetLogger("database"))
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	do.ProvideValue(injector, dbManager)

	redisManager, err := redis.NewManager(cfg.Redis, logManager.GetLogger("redis"))
	if err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}
	do.ProvideValue(injector, redisManager)

	db := dbManager.DB(DatabaseInstance)
	if cfg.Server.AutoMigrate {
		if err := db.AutoMigrate(&model.Publisher{}, &model.Website{}); err != nil {
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
	}

	store := cache.NewRedisStore(redisManager.Client(cfg.Cache.Instance), cfg.Cache.KeyPrefix)
	cacheSvc := cache.NewService(store, cfg.Cache.DefaultTTL, logManager.GetLogger("cache"))
	do.ProvideValue(injector, cacheSvc)

	publisherSvc := publisher.NewService(db, cacheSvc, logManager.GetLogger("publisher"))
	websiteSvc := website.NewService(db, cacheSvc, logManager.GetLogger("website"))
	do.ProvideValue(injector, publisherSvc)
	do.ProvideValue(injector, websiteSvc)

	aggregator := health.NewAggregator(5 * time.Second)
	aggregator.Register(database.NewHealthChecker(dbManager))
	aggregator.Register(redis.NewHealthChecker(redisManager))
	aggregator.Register(cache.NewHealthChecker(cacheSvc))
	do.ProvideValue(injector, aggregator)

	app := &App{
		config:   cfg,
		injector: injector,
		logger:   appLog,
	}
	app.engine = app.buildEngine(logManager, aggregator, publisherSvc, websiteSvc)

	return app, nil
}

// buildEngine assembles the gin engine with the middleware stack and routes
func (a *App) buildEngine(
	logManager *logger.Manager,
	aggregator *health.Aggregator,
	publisherSvc *publisher.Service,
	websiteSvc *website.Service,
) *gin.Engine {
	gin.SetMode(a.config.Server.Mode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	ginLog := logManager.GetLogger("gin")

	if a.config.Middleware.CORS.Enable {
		engine.Use(middleware.CORSWithConfig(a.config.corsConfig()))
	}
	engine.Use(middleware.TraceID(middleware.DefaultTraceConfig()))
	engine.Use(middleware.RequestLogWithConfig(middleware.RequestLogConfig{
		SkipPaths: a.config.Middleware.RequestLog.SkipPaths,
	}, ginLog))
	engine.Use(middleware.Recovery(ginLog))
	engine.Use(httpx.ErrorLoggingMiddleware(a.config.Httpx, logManager.GetLogger("httpx")))

	engine.NoRoute(httpx.NoRouteHandler())
	engine.NoMethod(httpx.NoMethodHandler())

	health.RegisterRoutes(engine, aggregator)

	api := engine.Group("/api/v1")
	publisher.RegisterRoutes(api, publisherSvc)
	website.RegisterRoutes(api, websiteSvc)

	return engine
}

// Engine returns the gin engine (integration tests drive it directly)
func (a *App) Engine() *gin.Engine {
	return a.engine
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully within the configured timeout
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.engine,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", zap.String("addr", addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		a.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	return a.Shutdown()
}

// Shutdown stops the HTTP server and releases every component
func (a *App) Shutdown() error {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.Error("http server shutdown failed", zap.Error(err))
		}
	}

	a.logger.Info("shutting down components")
	_ = a.injector.Shutdown()
	return nil
}
