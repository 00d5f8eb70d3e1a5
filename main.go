package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"solar-agent/config"
	httpLayer "solar-agent/http"
	"solar-agent/repository"
	"solar-agent/service"
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newCache(cfg *config.Config, logger *zap.Logger) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		logger.Info("Using in-memory report cache")
		return repository.NewMockCache(), func() {}
	}

	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL, logger.Named("redis"))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		// El caché no es crítico: las solicitudes siguen funcionando sin él
		logger.Warn("Redis unreachable, reports will be recomputed", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	return cache, func() {
		if err := cache.Close(); err != nil {
			logger.Warn("Error closing redis client", zap.Error(err))
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		// El logger aún no existe
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := newLogger(cfg.DebugLogging)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger error: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	cache, closeCache := newCache(cfg, logger)
	defer closeCache()

	savingsService := service.NewSavingsService(
		cfg.EconomicConstants(),
		cache,
		cfg.EvaluationWorkers,
		logger.Named("savings"),
	)
	savingsHandler := httpLayer.NewSavingsHandler(savingsService, logger.Named("http"))

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/solar/savings",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			logger,
			http.HandlerFunc(savingsHandler.CalculateSavings),
		),
	)

	mux.Handle(
		"/solar/select-config",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			logger,
			http.HandlerFunc(savingsHandler.SelectConfig),
		),
	)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Solar savings API listening", zap.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("Error starting server", zap.Error(err))
		return
	case <-quit:
		logger.Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Error during server shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
