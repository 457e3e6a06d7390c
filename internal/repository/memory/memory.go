// Package memory is an in-process implementation of domain.Repository used
// when no database is configured and in tests. It starts empty, so every
// query falls back to synthesized data until something is saved.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/thermora/backend/internal/domain"
)

// Repository keeps everything in slices guarded by a mutex
type Repository struct {
	mu            sync.RWMutex
	readings      []domain.Reading
	hotspots      []domain.Hotspot
	routes        map[string]domain.Route
	stops         []domain.BusStop
	neighborhoods []domain.Neighborhood
	healthErr     error
}

// NewRepository creates an empty repository
func NewRepository() *Repository {
	return &Repository{routes: make(map[string]domain.Route)}
}

// SaveReadings appends readings
func (r *Repository) SaveReadings(ctx context.Context, readings []domain.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readings = append(r.readings, readings...)
	return nil
}

// ReadingsBetween returns readings in [from, to), oldest first. A zero to has no upper bound.
func (r *Repository) ReadingsBetween(ctx context.Context, from, to time.Time) ([]domain.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Reading
	for _, rd := range r.readings {
		if !rd.Timestamp.Before(from) && (to.IsZero() || rd.Timestamp.Before(to)) {
			out = append(out, rd)
		}
	}
	sortByTime(out)
	return out, nil
}

// ReadingsByDevice returns a device's readings since the given instant, oldest first
func (r *Repository) ReadingsByDevice(ctx context.Context, deviceID string, since time.Time) ([]domain.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Reading
	for _, rd := range r.readings {
		if rd.DeviceID == deviceID && !rd.Timestamp.Before(since) {
			out = append(out, rd)
		}
	}
	sortByTime(out)
	return out, nil
}

// SaveHotspot appends a hotspot
func (r *Repository) SaveHotspot(ctx context.Context, h domain.Hotspot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hotspots = append(r.hotspots, h)
	return nil
}

// HotspotsByDate returns hotspots recorded for date
func (r *Repository) HotspotsByDate(ctx context.Context, date string) ([]domain.Hotspot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Hotspot
	for _, h := range r.hotspots {
		if h.Date == date {
			out = append(out, h)
		}
	}
	return out, nil
}

// SaveRoute inserts or replaces a route by id
func (r *Repository) SaveRoute(ctx context.Context, route domain.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[route.ID] = route
	return nil
}

// ActiveRoutes returns active routes ordered by id
func (r *Repository) ActiveRoutes(ctx context.Context) ([]domain.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Route
	for _, route := range r.routes {
		if route.Active {
			out = append(out, route)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SaveBusStop inserts or replaces a stop by id
func (r *Repository) SaveBusStop(ctx context.Context, s domain.BusStop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.stops {
		if r.stops[i].ID == s.ID {
			r.stops[i] = s
			return nil
		}
	}
	r.stops = append(r.stops, s)
	return nil
}

// BusStops returns every stop
func (r *Repository) BusStops(ctx context.Context) ([]domain.BusStop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.BusStop(nil), r.stops...), nil
}

// SaveNeighborhood inserts or replaces a neighborhood by id
func (r *Repository) SaveNeighborhood(ctx context.Context, n domain.Neighborhood) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.neighborhoods {
		if r.neighborhoods[i].ID == n.ID {
			r.neighborhoods[i] = n
			return nil
		}
	}
	r.neighborhoods = append(r.neighborhoods, n)
	return nil
}

// ActiveNeighborhoods returns active neighborhoods
func (r *Repository) ActiveNeighborhoods(ctx context.Context) ([]domain.Neighborhood, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Neighborhood
	for _, n := range r.neighborhoods {
		if n.Active {
			out = append(out, n)
		}
	}
	return out, nil
}

// FailHealth makes Health return err, nil restores it
func (r *Repository) FailHealth(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.healthErr = err
}

// Health always succeeds unless FailHealth was called
func (r *Repository) Health(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.healthErr
}

func sortByTime(readings []domain.Reading) {
	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].Timestamp.Before(readings[j].Timestamp)
	})
}

var (
	_ domain.Repository     = (*Repository)(nil)
	_ domain.TopologyWriter = (*Repository)(nil)
)
