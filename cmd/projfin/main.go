package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/projfin/internal/config"
	"github.com/Spok95/projfin/internal/domain/actuals"
	"github.com/Spok95/projfin/internal/domain/benchmarks"
	"github.com/Spok95/projfin/internal/domain/pl"
	"github.com/Spok95/projfin/internal/domain/plan"
	"github.com/Spok95/projfin/internal/domain/projects"
	"github.com/Spok95/projfin/internal/domain/rates"
	"github.com/Spok95/projfin/internal/domain/rollup"
	"github.com/Spok95/projfin/internal/infra/api"
	"github.com/Spok95/projfin/internal/infra/db"
	httpx "github.com/Spok95/projfin/internal/infra/http"
	"github.com/Spok95/projfin/internal/infra/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	plRepo := pl.NewRepo(pool)
	svc := rollup.NewService(log,
		projects.NewRepo(pool),
		plan.NewRepo(pool),
		rates.NewLoader(pool, log),
		actuals.NewRepo(pool),
		plRepo,
		benchmarks.NewRepo(pool),
	)
	handler := api.NewHandler(log, svc, plRepo)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, handler)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
