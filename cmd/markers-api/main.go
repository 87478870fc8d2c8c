package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"immo-map/config"
	"immo-map/server"
	"immo-map/storage"
	"immo-map/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		utils.Error("Could not open %s store: %v", cfg.Store, err)
		os.Exit(1)
	}
	defer store.Close()

	router := server.NewRouter(server.NewMarkerHandler(store))

	errCh := make(chan error, 1)
	go func() {
		utils.Info("Markers API listening on %s (store=%s)", cfg.ListenAddr, cfg.Store)
		errCh <- router.Run(cfg.ListenAddr)
	}()

	select {
	case <-ctx.Done():
		utils.Info("Shutting down")
	case err := <-errCh:
		utils.Error("server error: %v", err)
		store.Close()
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (storage.MarkerStore, error) {
	switch cfg.Store {
	case "memory":
		return storage.NewMemoryStore(), nil

	case "postgres":
		var pg *storage.PostgresStore
		err := utils.Retry(ctx, cfg.DBConnectRetries, time.Second, func(ctx context.Context) error {
			var err error
			pg, err = storage.NewPostgresStore(ctx, cfg.PostgresDSN())
			return err
		})
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil

	case "mongo":
		var mg *storage.MongoStore
		err := utils.Retry(ctx, cfg.DBConnectRetries, time.Second, func(ctx context.Context) error {
			var err error
			mg, err = storage.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
			return err
		})
		if err != nil {
			return nil, err
		}
		return mg, nil
	}

	return nil, fmt.Errorf("unknown store %q (want memory, postgres or mongo)", cfg.Store)
}
