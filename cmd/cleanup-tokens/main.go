// Command cleanup-tokens deletes expired and revoked refresh tokens. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/campushub/campushub-backend/internal/adapter/postgres"
	"github.com/campushub/campushub-backend/internal/adapter/postgres/token"
	"github.com/campushub/campushub-backend/internal/app"
	"github.com/campushub/campushub-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	count, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup complete", slog.Int("deleted", count))
}
