package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/liwesley02/order-up/internal/config"
	"github.com/liwesley02/order-up/internal/engine"
	"github.com/liwesley02/order-up/internal/service"
	"github.com/liwesley02/order-up/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/orderup/orderup.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine wires the feed, storage, and batching engine, restoring
// persisted prep times and capacity.
func initEngine(ctx context.Context) (*engine.Engine, service.Storage, error) {
	orderFeed, err := config.LoadFeed()
	if err != nil {
		return nil, nil, err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	e := engine.New(orderFeed, store)
	if err := e.Load(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return e, store, nil
}
