package repository

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thermora/backend/internal/config"
	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/internal/repository/influx"
	"github.com/thermora/backend/internal/repository/memory"
	"github.com/thermora/backend/internal/repository/postgres"
	"github.com/thermora/backend/internal/repository/sqlite"
)

// Store is an opened repository together with its writer side
type Store interface {
	domain.Repository
	domain.TopologyWriter
}

type writableComposite struct {
	*Composite
	writer domain.TopologyWriter
}

func (w writableComposite) SaveRoute(ctx context.Context, r domain.Route) error {
	return w.writer.SaveRoute(ctx, r)
}

func (w writableComposite) SaveBusStop(ctx context.Context, s domain.BusStop) error {
	return w.writer.SaveBusStop(ctx, s)
}

func (w writableComposite) SaveNeighborhood(ctx context.Context, n domain.Neighborhood) error {
	return w.writer.SaveNeighborhood(ctx, n)
}

// Open connects the store selected by cfg. A database that cannot be
// reached degrades to the in-memory store so the API keeps serving demo
// data. The returned func releases every connection.
func Open(ctx context.Context, cfg *config.Config) (Store, func()) {
	var (
		base    Store
		closers []func()
	)

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			err = pool.Ping(ctx)
		}
		if err != nil {
			log.Printf("Warning: Could not connect to database: %v", err)
			if pool != nil {
				pool.Close()
			}
			break
		}
		repo := postgres.NewPostgresRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Printf("Warning: %v", err)
			pool.Close()
			break
		}
		log.Println("Connected to PostgreSQL")
		base = repo
		closers = append(closers, pool.Close)

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			log.Printf("Warning: Could not open SQLite database: %v", err)
			break
		}
		base = sqlite.NewRepository(db)
		closers = append(closers, func() { db.Close() })
	}

	if base == nil {
		log.Println("Running with in-memory store, views fall back to demo data")
		base = memory.NewRepository()
	}

	var store Store = base
	if cfg.InfluxEnabled() {
		readings := influx.NewReadingRepository(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket)
		closers = append(closers, readings.Close)
		store = writableComposite{Composite: WithReadings(base, readings), writer: base}
		log.Printf("Readings stored in InfluxDB bucket %s", cfg.InfluxBucket)
	}

	return store, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}
