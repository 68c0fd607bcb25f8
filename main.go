package main

import (
	"context"
	"fmt"
	"os"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/ledger"
	"auction-house/internal/server"
	"auction-house/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLogLevel(cfg.LogLevel)

	store, err := buildStore(cfg)
	if err != nil {
		utils.Fatal("failed to initialize ledger store", map[string]any{"error": err.Error()})
	}

	engine := auction.NewAuctionService(store)
	router := server.SetupRouter(engine)

	utils.Info("starting auction server", map[string]any{
		"address": cfg.ServerAddress,
		"backend": cfg.StoreBackend,
	})
	if err := router.Run(cfg.ServerAddress); err != nil {
		utils.Fatal("server failed", map[string]any{"error": err.Error()})
	}
}

// buildStore wires the configured ledger backend
func buildStore(cfg config.Config) (ledger.Store, error) {
	switch cfg.StoreBackend {
	case "memory":
		return ledger.NewMemoryStore(), nil
	case "postgres":
		if err := runDBMigration(cfg.MigrationURL, cfg.PostgresConn); err != nil {
			return nil, err
		}
		pool, err := pgxpool.New(context.Background(), cfg.PostgresConn)
		if err != nil {
			return nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		return ledger.NewPostgresStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func runDBMigration(migrationURL, dbSource string) error {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return fmt.Errorf("cannot create migrate instance: %w", err)
	}

	if err := migration.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrate up: %w", err)
	}
	utils.Info("db migrated successfully", nil)
	return nil
}
