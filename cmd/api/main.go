// Command api runs the juggle HTTP server.
//
// @title Juggle API
// @version 1.0
// @description Businesses post jobs, professionals apply to them.
// @BasePath /v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"juggle-backend/internal/assignment"
	"juggle-backend/internal/auth"
	"juggle-backend/internal/config"
	"juggle-backend/internal/database"
	"juggle-backend/internal/server"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to config YAML file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := newLogger(cfg.Logging.Level)
	slog.SetDefault(logger)
	auth.SetLogger(logger)
	assignment.SetLogger(logger)
	auth.EnableAuthFile(cfg.Logging.AuthFile)

	db, err := database.GetMainDB(cfg.Database)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}

	ctx := context.Background()
	blacklist, closeBlacklist := newBlacklist(ctx, cfg.Redis.URL)

	srv := server.NewHTTPServer(server.New(cfg, db, blacklist))

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	closeBlacklist()
	if err := db.Close(); err != nil {
		logger.Error("closing database", "error", err)
	}
	logger.Info("server exited")
}

// newLogger logs JSON in release mode and text otherwise.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if gin.Mode() == gin.ReleaseMode {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// newBlacklist shares revocations through Redis when redisURL is set and keeps them in process
// memory otherwise.
func newBlacklist(ctx context.Context, redisURL string) (auth.JwtBlacklistStore, func()) {
	if redisURL == "" {
		store := auth.NewInMemoryBlacklistStore(time.Minute)
		return store, store.Stop
	}

	client, err := database.NewRedisClient(ctx, redisURL)
	if err != nil {
		log.Fatalf("Redis failed to initialize: %v", err)
	}
	return auth.NewRedisBlacklistStore(client), func() {
		if err := client.Close(); err != nil {
			slog.Error("closing redis", "error", err)
		}
	}
}
