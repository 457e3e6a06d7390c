package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thermora/backend/internal/domain"
)

// PostgresRepository implements domain.Repository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates tables and indexes when missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to apply schema: %w", err)
	}
	return nil
}

// SaveReadings bulk-inserts readings with COPY
func (r *PostgresRepository) SaveReadings(ctx context.Context, readings []domain.Reading) error {
	if len(readings) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(readings))
	for _, rd := range readings {
		var routeID any
		if rd.RouteID != "" {
			routeID = rd.RouteID
		}
		rows = append(rows, []any{uuid.NewString(), rd.Timestamp, rd.Lat, rd.Lng, rd.Temperature, rd.DeviceID, routeID})
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"thermal_readings"},
		[]string{"id", "recorded_at", "lat", "lng", "temperature", "device_id", "route_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save readings: %w", err)
	}
	return nil
}

// ReadingsBetween retrieves readings with from <= recorded_at < to, open ended when to is zero
func (r *PostgresRepository) ReadingsBetween(ctx context.Context, from, to time.Time) ([]domain.Reading, error) {
	query := `
		SELECT recorded_at, lat, lng, temperature, device_id, COALESCE(route_id, '')
		FROM thermal_readings
		WHERE recorded_at >= $1 AND ($2::timestamptz IS NULL OR recorded_at < $2)
		ORDER BY recorded_at ASC
	`
	var upper any
	if !to.IsZero() {
		upper = to
	}
	return r.queryReadings(ctx, query, from, upper)
}

// ReadingsByDevice retrieves a device's readings since the given instant
func (r *PostgresRepository) ReadingsByDevice(ctx context.Context, deviceID string, since time.Time) ([]domain.Reading, error) {
	query := `
		SELECT recorded_at, lat, lng, temperature, device_id, COALESCE(route_id, '')
		FROM thermal_readings
		WHERE device_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at ASC
	`
	return r.queryReadings(ctx, query, deviceID, since)
}

func (r *PostgresRepository) queryReadings(ctx context.Context, query string, args ...any) ([]domain.Reading, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query readings: %w", err)
	}
	defer rows.Close()

	var results []domain.Reading
	for rows.Next() {
		var rd domain.Reading
		if err := rows.Scan(&rd.Timestamp, &rd.Lat, &rd.Lng, &rd.Temperature, &rd.DeviceID, &rd.RouteID); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan reading row: %w", err)
		}
		results = append(results, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate readings: %w", err)
	}

	return results, nil
}

// SaveHotspot persists a hotspot
func (r *PostgresRepository) SaveHotspot(ctx context.Context, h domain.Hotspot) error {
	query := `
		INSERT INTO hotspots (
			id, name, lat, lng, max_temp, duration_minutes, population, risk_level, date, start_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		uuid.NewString(), h.Name, h.Lat, h.Lng, h.MaxTemp, h.DurationMinutes, h.Population, string(h.RiskLevel), h.Date, h.StartTime,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save hotspot: %w", err)
	}

	return nil
}

// HotspotsByDate retrieves the hotspots recorded for a date
func (r *PostgresRepository) HotspotsByDate(ctx context.Context, date string) ([]domain.Hotspot, error) {
	query := `
		SELECT name, lat, lng, max_temp, duration_minutes, population, risk_level, date, start_time
		FROM hotspots
		WHERE date = $1
	`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query hotspots: %w", err)
	}
	defer rows.Close()

	var results []domain.Hotspot
	for rows.Next() {
		var h domain.Hotspot
		var risk string
		err := rows.Scan(&h.Name, &h.Lat, &h.Lng, &h.MaxTemp, &h.DurationMinutes, &h.Population, &risk, &h.Date, &h.StartTime)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan hotspot row: %w", err)
		}
		h.RiskLevel = domain.RiskLevel(risk)
		results = append(results, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate hotspots: %w", err)
	}
	return results, nil
}

// SaveRoute upserts a route
func (r *PostgresRepository) SaveRoute(ctx context.Context, route domain.Route) error {
	coords, err := json.Marshal(route.Coordinates)
	if err != nil {
		return fmt.Errorf("postgres: failed to encode route coordinates: %w", err)
	}

	query := `
		INSERT INTO routes (id, name, coordinates, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, coordinates = EXCLUDED.coordinates, active = EXCLUDED.active
	`
	if _, err := r.pool.Exec(ctx, query, route.ID, route.Name, coords, route.Active); err != nil {
		return fmt.Errorf("postgres: failed to save route: %w", err)
	}
	return nil
}

// ActiveRoutes retrieves routes flagged active
func (r *PostgresRepository) ActiveRoutes(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, coordinates, active FROM routes WHERE active ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query routes: %w", err)
	}
	defer rows.Close()

	var results []domain.Route
	for rows.Next() {
		var route domain.Route
		var coords []byte
		if err := rows.Scan(&route.ID, &route.Name, &coords, &route.Active); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan route row: %w", err)
		}
		if err := json.Unmarshal(coords, &route.Coordinates); err != nil {
			return nil, fmt.Errorf("postgres: failed to decode route %s coordinates: %w", route.ID, err)
		}
		results = append(results, route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate routes: %w", err)
	}
	return results, nil
}

// BusStops retrieves every stop
func (r *PostgresRepository) BusStops(ctx context.Context) ([]domain.BusStop, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, lat, lng, route_ids FROM bus_stops ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query bus stops: %w", err)
	}
	defer rows.Close()

	var results []domain.BusStop
	for rows.Next() {
		var s domain.BusStop
		if err := rows.Scan(&s.ID, &s.Name, &s.Lat, &s.Lng, &s.RouteIDs); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan bus stop row: %w", err)
		}
		results = append(results, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate bus stops: %w", err)
	}
	return results, nil
}

// SaveBusStop upserts a stop
func (r *PostgresRepository) SaveBusStop(ctx context.Context, s domain.BusStop) error {
	query := `
		INSERT INTO bus_stops (id, name, lat, lng, route_ids)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, lat = EXCLUDED.lat, lng = EXCLUDED.lng, route_ids = EXCLUDED.route_ids
	`
	if _, err := r.pool.Exec(ctx, query, s.ID, s.Name, s.Lat, s.Lng, s.RouteIDs); err != nil {
		return fmt.Errorf("postgres: failed to save bus stop: %w", err)
	}
	return nil
}

// SaveNeighborhood upserts a neighborhood
func (r *PostgresRepository) SaveNeighborhood(ctx context.Context, n domain.Neighborhood) error {
	boundaries, err := json.Marshal(n.Boundaries)
	if err != nil {
		return fmt.Errorf("postgres: failed to encode neighborhood boundaries: %w", err)
	}

	query := `
		INSERT INTO neighborhoods (id, name, boundaries, priority, status, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, boundaries = EXCLUDED.boundaries, priority = EXCLUDED.priority,
			status = EXCLUDED.status, active = EXCLUDED.active
	`
	_, err = r.pool.Exec(ctx, query, n.ID, n.Name, boundaries, string(n.Priority), string(n.Status), n.Active)
	if err != nil {
		return fmt.Errorf("postgres: failed to save neighborhood: %w", err)
	}
	return nil
}

// ActiveNeighborhoods retrieves neighborhoods flagged active
func (r *PostgresRepository) ActiveNeighborhoods(ctx context.Context) ([]domain.Neighborhood, error) {
	query := `
		SELECT id, name, boundaries, priority, status, active
		FROM neighborhoods
		WHERE active
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query neighborhoods: %w", err)
	}
	defer rows.Close()

	var results []domain.Neighborhood
	for rows.Next() {
		var n domain.Neighborhood
		var boundaries []byte
		var priority, status string
		if err := rows.Scan(&n.ID, &n.Name, &boundaries, &priority, &status, &n.Active); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan neighborhood row: %w", err)
		}
		if err := json.Unmarshal(boundaries, &n.Boundaries); err != nil {
			return nil, fmt.Errorf("postgres: failed to decode neighborhood %s boundaries: %w", n.ID, err)
		}
		n.Priority = domain.Priority(priority)
		n.Status = domain.NeighborhoodStatus(status)
		results = append(results, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate neighborhoods: %w", err)
	}
	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

var (
	_ domain.Repository     = (*PostgresRepository)(nil)
	_ domain.TopologyWriter = (*PostgresRepository)(nil)
)
