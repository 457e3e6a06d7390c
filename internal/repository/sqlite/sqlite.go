// Package sqlite stores thermal data in an embedded SQLite database
// (pure Go driver, no cgo). It backs local development and tests.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/thermora/backend/internal/domain"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Open opens the database at path and applies the schema
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", path, err)
	}

	if path == MemoryPath {
		// every connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: failed to enable WAL: %w", err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to apply schema: %w", err)
	}

	log.Printf("SQLite database ready: %s", path)
	return db, nil
}

// Repository implements domain.Repository on database/sql
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new SQLite repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// SaveReadings inserts readings in a single transaction
func (r *Repository) SaveReadings(ctx context.Context, readings []domain.Reading) error {
	if len(readings) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO thermal_readings (id, recorded_at, lat, lng, temperature, device_id, route_id)
		VALUES (?, ?, ?, ?, ?, ?, NULLIF(?, ''))
	`)
	if err != nil {
		return fmt.Errorf("sqlite: failed to prepare reading insert: %w", err)
	}
	defer stmt.Close()

	for _, rd := range readings {
		_, err := stmt.ExecContext(ctx, uuid.NewString(), rd.Timestamp.UnixMilli(), rd.Lat, rd.Lng, rd.Temperature, rd.DeviceID, rd.RouteID)
		if err != nil {
			return fmt.Errorf("sqlite: failed to save reading: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: failed to commit readings: %w", err)
	}
	return nil
}

// ReadingsBetween retrieves readings with from <= timestamp < to
func (r *Repository) ReadingsBetween(ctx context.Context, from, to time.Time) ([]domain.Reading, error) {
	query := `SELECT recorded_at, lat, lng, temperature, device_id, COALESCE(route_id, '')
		FROM thermal_readings
		WHERE recorded_at >= ? AND recorded_at < ?
		ORDER BY recorded_at ASC`
	upper := int64(math.MaxInt64)
	if !to.IsZero() {
		upper = to.UnixMilli()
	}
	return r.queryReadings(ctx, query, from.UnixMilli(), upper)
}

// ReadingsByDevice retrieves a device's readings since the given instant
func (r *Repository) ReadingsByDevice(ctx context.Context, deviceID string, since time.Time) ([]domain.Reading, error) {
	query := `SELECT recorded_at, lat, lng, temperature, device_id, COALESCE(route_id, '')
		FROM thermal_readings
		WHERE device_id = ? AND recorded_at >= ?
		ORDER BY recorded_at ASC`
	return r.queryReadings(ctx, query, deviceID, since.UnixMilli())
}

func (r *Repository) queryReadings(ctx context.Context, query string, args ...any) ([]domain.Reading, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query readings: %w", err)
	}
	defer rows.Close()

	var readings []domain.Reading
	for rows.Next() {
		var rd domain.Reading
		var ms int64
		if err := rows.Scan(&ms, &rd.Lat, &rd.Lng, &rd.Temperature, &rd.DeviceID, &rd.RouteID); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan reading: %w", err)
		}
		rd.Timestamp = time.UnixMilli(ms).UTC()
		readings = append(readings, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: failed to iterate readings: %w", err)
	}
	return readings, nil
}

// SaveHotspot persists a hotspot
func (r *Repository) SaveHotspot(ctx context.Context, h domain.Hotspot) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO hotspots (id, name, lat, lng, max_temp, duration_minutes, population, risk_level, date, start_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), h.Name, h.Lat, h.Lng, h.MaxTemp, h.DurationMinutes, h.Population, string(h.RiskLevel), h.Date, h.StartTime.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: failed to save hotspot: %w", err)
	}
	return nil
}

// HotspotsByDate retrieves the hotspots recorded for a date
func (r *Repository) HotspotsByDate(ctx context.Context, date string) ([]domain.Hotspot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, lat, lng, max_temp, duration_minutes, population, risk_level, date, start_time
		FROM hotspots WHERE date = ?`, date)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query hotspots: %w", err)
	}
	defer rows.Close()

	var hotspots []domain.Hotspot
	for rows.Next() {
		var h domain.Hotspot
		var risk string
		var start int64
		if err := rows.Scan(&h.Name, &h.Lat, &h.Lng, &h.MaxTemp, &h.DurationMinutes, &h.Population, &risk, &h.Date, &start); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan hotspot: %w", err)
		}
		h.RiskLevel = domain.RiskLevel(risk)
		h.StartTime = time.UnixMilli(start).UTC()
		hotspots = append(hotspots, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: failed to iterate hotspots: %w", err)
	}
	return hotspots, nil
}

// SaveRoute upserts a route
func (r *Repository) SaveRoute(ctx context.Context, route domain.Route) error {
	coords, err := json.Marshal(route.Coordinates)
	if err != nil {
		return fmt.Errorf("sqlite: failed to encode route coordinates: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO routes (id, name, coordinates, active) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, coordinates = excluded.coordinates, active = excluded.active`,
		route.ID, route.Name, string(coords), route.Active,
	)
	if err != nil {
		return fmt.Errorf("sqlite: failed to save route: %w", err)
	}
	return nil
}

// ActiveRoutes retrieves routes flagged active
func (r *Repository) ActiveRoutes(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, coordinates, active FROM routes WHERE active = 1 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query routes: %w", err)
	}
	defer rows.Close()

	var routes []domain.Route
	for rows.Next() {
		var route domain.Route
		var coords string
		if err := rows.Scan(&route.ID, &route.Name, &coords, &route.Active); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan route: %w", err)
		}
		if err := json.Unmarshal([]byte(coords), &route.Coordinates); err != nil {
			return nil, fmt.Errorf("sqlite: failed to decode route %s coordinates: %w", route.ID, err)
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: failed to iterate routes: %w", err)
	}
	return routes, nil
}

// SaveBusStop upserts a stop
func (r *Repository) SaveBusStop(ctx context.Context, s domain.BusStop) error {
	routeIDs, err := json.Marshal(s.RouteIDs)
	if err != nil {
		return fmt.Errorf("sqlite: failed to encode stop routes: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO bus_stops (id, name, lat, lng, route_ids) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, lat = excluded.lat, lng = excluded.lng, route_ids = excluded.route_ids`,
		s.ID, s.Name, s.Lat, s.Lng, string(routeIDs),
	)
	if err != nil {
		return fmt.Errorf("sqlite: failed to save bus stop: %w", err)
	}
	return nil
}

// BusStops retrieves every stop
func (r *Repository) BusStops(ctx context.Context) ([]domain.BusStop, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, lat, lng, route_ids FROM bus_stops ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query bus stops: %w", err)
	}
	defer rows.Close()

	var stops []domain.BusStop
	for rows.Next() {
		var s domain.BusStop
		var routeIDs string
		if err := rows.Scan(&s.ID, &s.Name, &s.Lat, &s.Lng, &routeIDs); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan bus stop: %w", err)
		}
		if err := json.Unmarshal([]byte(routeIDs), &s.RouteIDs); err != nil {
			return nil, fmt.Errorf("sqlite: failed to decode stop %s routes: %w", s.ID, err)
		}
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: failed to iterate bus stops: %w", err)
	}
	return stops, nil
}

// SaveNeighborhood upserts a neighborhood
func (r *Repository) SaveNeighborhood(ctx context.Context, n domain.Neighborhood) error {
	boundaries, err := json.Marshal(n.Boundaries)
	if err != nil {
		return fmt.Errorf("sqlite: failed to encode neighborhood boundaries: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO neighborhoods (id, name, boundaries, priority, status, active) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, boundaries = excluded.boundaries,
			priority = excluded.priority, status = excluded.status, active = excluded.active`,
		n.ID, n.Name, string(boundaries), string(n.Priority), string(n.Status), n.Active,
	)
	if err != nil {
		return fmt.Errorf("sqlite: failed to save neighborhood: %w", err)
	}
	return nil
}

// ActiveNeighborhoods retrieves neighborhoods flagged active
func (r *Repository) ActiveNeighborhoods(ctx context.Context) ([]domain.Neighborhood, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, boundaries, priority, status, active
		FROM neighborhoods WHERE active = 1 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query neighborhoods: %w", err)
	}
	defer rows.Close()

	var out []domain.Neighborhood
	for rows.Next() {
		var n domain.Neighborhood
		var boundaries, priority, status string
		if err := rows.Scan(&n.ID, &n.Name, &boundaries, &priority, &status, &n.Active); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan neighborhood: %w", err)
		}
		if err := json.Unmarshal([]byte(boundaries), &n.Boundaries); err != nil {
			return nil, fmt.Errorf("sqlite: failed to decode neighborhood %s boundaries: %w", n.ID, err)
		}
		n.Priority = domain.Priority(priority)
		n.Status = domain.NeighborhoodStatus(status)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: failed to iterate neighborhoods: %w", err)
	}
	return out, nil
}

// Health checks database connectivity
func (r *Repository) Health(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: health check failed: %w", err)
	}
	return nil
}

var (
	_ domain.Repository     = (*Repository)(nil)
	_ domain.TopologyWriter = (*Repository)(nil)
)
