package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	cache "github.com/veda-labs/jyotish/internal/adapters/cache"
	gemini "github.com/veda-labs/jyotish/internal/adapters/genai/gemini"
	api "github.com/veda-labs/jyotish/internal/adapters/http/api"
	swagger "github.com/veda-labs/jyotish/internal/adapters/http/swagger"
	service "github.com/veda-labs/jyotish/internal/app"
	"github.com/veda-labs/jyotish/internal/config"
	"github.com/veda-labs/jyotish/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 120 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Local development convenience; absent .env files are not an error.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env). A missing
	// generation API credential fails here, before any request is accepted.
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	generator := gemini.NewClient(
		&http.Client{Timeout: time.Duration(cfg.UpstreamTimeoutMS) * time.Millisecond},
		cfg.GeminiAPIKey,
		cfg.GeminiBaseURL,
		cfg.GeminiModel,
		log.Named("gemini"),
	)

	opts := []service.Option{service.WithLogger(log.Named("service"))}
	if cfg.RedisAddr != "" {
		store := cache.NewRedis(cfg.RedisAddr)
		defer store.Close()
		opts = append(opts, service.WithCache(store))
		log.Info(ctx, "daily horoscope cache enabled", logger.String("redis_addr", cfg.RedisAddr))
	}
	svc := service.New(generator, opts...)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, cfg.MaxBodyBytes, log.Named("api"))
	apiServer.Register(ctx, mux)
	swagger.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr), logger.String("model", cfg.GeminiModel))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
