package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	"gaia.climateintel.org/internal/app"
	"gaia.climateintel.org/internal/appconf"
	"gaia.climateintel.org/internal/auth"
	"gaia.climateintel.org/internal/climate"
	"gaia.climateintel.org/internal/earthengine"
	"gaia.climateintel.org/internal/heatmap"
	"gaia.climateintel.org/internal/logging"
	"gaia.climateintel.org/internal/news"
	"gaia.climateintel.org/internal/restapi"
	"gaia.climateintel.org/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var cfg appconf.Config
	var envFlag, apiKeysFlag, configFile, refreshFlag string

	flag.IntVar(&cfg.Port, "port", 5000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per API key (-1 for unlimited)")
	flag.StringVar(&cfg.DataPath, "data-path", "gaia.db", "Path to the climate SQLite database")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose database logging")
	flag.BoolVar(&cfg.FeedsEnabled, "feeds", true, "Import public climate feeds on startup and on a schedule")
	flag.StringVar(&refreshFlag, "refresh-interval", "24h", "Feed refresh interval")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Secret for signing session tokens (falls back to GAIA_JWT_SECRET)")
	flag.StringVar(&configFile, "config", "", "Path to a YAML config file (overrides flags)")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	cfg.ApiKeys = appconf.ParseApiKeys(apiKeysFlag)

	refreshInterval, err := time.ParseDuration(refreshFlag)
	if err != nil {
		logger.Error("invalid refresh interval", "value", refreshFlag, "error", err)
		os.Exit(1)
	}
	cfg.RefreshInterval = refreshInterval

	if configFile != "" {
		if err := appconf.LoadConfigFile(configFile, &cfg); err != nil {
			logger.Error("failed to load config file", "path", configFile, "error", err)
			os.Exit(1)
		}
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("GAIA_JWT_SECRET")
	}
	if cfg.JWTSecret == "" && cfg.Env == appconf.Production {
		logger.Error("a JWT secret is required in production")
		os.Exit(1)
	}

	manager, err := climate.InitClimateManager(climate.Config{
		DataPath:        cfg.DataPath,
		Env:             cfg.Env,
		Verbose:         cfg.Verbose,
		FeedsEnabled:    cfg.FeedsEnabled,
		RefreshInterval: cfg.RefreshInterval,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize climate manager", "error", err)
		os.Exit(1)
	}

	earthEngine := earthengine.NewServiceFromEnv(logger)
	queries := manager.ClimateDB.Queries

	application := &app.Application{
		Config:         cfg,
		Logger:         logger,
		ClimateManager: manager,
		EarthEngine:    earthEngine,
		Heatmap:        heatmap.NewGenerator(queries, earthEngine),
		Auth:           auth.NewService(queries, cfg.JWTSecret, auth.DefaultTokenTTL),
		News:           news.NewService(),
	}

	api := restapi.NewRestAPI(application)
	ui := &webui.WebUI{Application: application}

	router := httprouter.New()
	api.SetRoutes(router)
	ui.SetWebUIRoutes(router)

	var handler http.Handler = router
	handler = restapi.NewRequestLoggingMiddleware(logger)(handler)
	handler = restapi.CompressionMiddleware(handler)
	handler = api.RateLimiter()(handler)
	handler = api.WithSecurityHeaders(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		logger.Info("shutting down server", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())

	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		manager.Shutdown()
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	manager.Shutdown()
	logger.Info("server stopped")
}
