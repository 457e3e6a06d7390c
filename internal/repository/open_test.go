package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermora/backend/internal/config"
	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/internal/repository/memory"
	"github.com/thermora/backend/internal/repository/sqlite"
)

func TestOpenMemory(t *testing.T) {
	store, closeFn := Open(context.Background(), &config.Config{StoreDriver: config.DriverMemory})
	defer closeFn()

	assert.IsType(t, &memory.Repository{}, store)
}

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "thermora.db")
	store, closeFn := Open(ctx, &config.Config{StoreDriver: config.DriverSQLite, SQLitePath: path})
	defer closeFn()

	require.IsType(t, &sqlite.Repository{}, store)
	require.NoError(t, store.SaveRoute(ctx, domain.Route{ID: "route-1", Name: "Linha 7411", Active: true}))

	routes, err := store.ActiveRoutes(ctx)
	require.NoError(t, err)
	assert.Len(t, routes, 1)
}

func TestOpenUnreachablePostgresFallsBackToMemory(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	store, closeFn := Open(ctx, &config.Config{
		StoreDriver: config.DriverPostgres,
		DatabaseURL: "not a connection string ::",
	})
	defer closeFn()

	assert.IsType(t, &memory.Repository{}, store)
}

func TestOpenWithInfluxSplitsReadings(t *testing.T) {
	store, closeFn := Open(context.Background(), &config.Config{
		StoreDriver:  config.DriverMemory,
		InfluxURL:    "http://localhost:8086",
		InfluxToken:  "token",
		InfluxOrg:    "thermora",
		InfluxBucket: "thermal",
	})
	defer closeFn()

	w, ok := store.(writableComposite)
	require.True(t, ok)
	assert.IsType(t, &memory.Repository{}, w.writer)
	assert.NoError(t, store.SaveRoute(context.Background(), domain.Route{ID: "route-1", Active: true}))
}
