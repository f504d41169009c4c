package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/amrutap2004/RankRaise/internal/adapter/repo"
	"github.com/amrutap2004/RankRaise/internal/domain"
	"github.com/amrutap2004/RankRaise/internal/http/handlers"
	"github.com/amrutap2004/RankRaise/internal/http/httpapi"
	"github.com/amrutap2004/RankRaise/internal/infra"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Storage backend is selected exactly once for the process lifetime.
	// No database, or a failed connection attempt, means the ephemeral
	// demo store serves every request until restart.
	ctx := context.Background()
	var (
		store       domain.Store
		storageMode string
	)
	if cfg.DatabaseURL == "" {
		logger.Warn().Msg("DATABASE_URL not set, running with in-memory demo store")
		store = repo.NewMemoryStore()
		storageMode = "memory"
	} else if dbpool, err := infra.NewDBPool(ctx, cfg); err != nil {
		logger.Warn().Err(err).Msg("database unreachable, running with in-memory demo store")
		store = repo.NewMemoryStore()
		storageMode = "memory"
	} else {
		defer dbpool.Close()
		pg := repo.NewPostgresStore(dbpool)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to bootstrap schema")
		}
		store = pg
		storageMode = "postgres"
	}

	app := handlers.NewApp(store, logger, storageMode)
	router := httpapi.NewRouter(app, logger, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("storage", storageMode).Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
