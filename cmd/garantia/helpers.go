package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/oficinagl/garantia/internal/config"
	"github.com/oficinagl/garantia/internal/pipeline"
	"github.com/oficinagl/garantia/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
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

// gateFromConfig builds the validation gate from configured year bounds.
func gateFromConfig() pipeline.Gate {
	return pipeline.NewGate(
		viper.GetInt("validation.min_year"),
		viper.GetInt("validation.max_year"),
	)
}
