package domain

import (
	"context"
	"time"
)

// ReadingStore reads and writes thermal readings.
// Implementations must treat an empty result as a nil/empty slice and a nil error.
type ReadingStore interface {
	// SaveReadings persists a batch of readings
	SaveReadings(ctx context.Context, readings []Reading) error

	// ReadingsBetween returns readings with from <= timestamp < to, oldest first.
	// A zero to leaves the range open ended.
	ReadingsBetween(ctx context.Context, from, to time.Time) ([]Reading, error)

	// ReadingsByDevice returns a device's readings with timestamp >= since, oldest first
	ReadingsByDevice(ctx context.Context, deviceID string, since time.Time) ([]Reading, error)
}

// HotspotStore reads curated hotspots
type HotspotStore interface {
	// SaveHotspot persists a hotspot
	SaveHotspot(ctx context.Context, h Hotspot) error

	// HotspotsByDate returns the hotspots recorded for a YYYY-MM-DD date
	HotspotsByDate(ctx context.Context, date string) ([]Hotspot, error)
}

// TopologyStore reads routes, stops and neighborhoods
type TopologyStore interface {
	// SaveRoute inserts or replaces a route
	SaveRoute(ctx context.Context, r Route) error

	// ActiveRoutes returns routes flagged active
	ActiveRoutes(ctx context.Context) ([]Route, error)

	// BusStops returns every stop
	BusStops(ctx context.Context) ([]BusStop, error)

	// ActiveNeighborhoods returns neighborhoods flagged active
	ActiveNeighborhoods(ctx context.Context) ([]Neighborhood, error)
}

// TopologyWriter seeds the static topology into a store
type TopologyWriter interface {
	SaveRoute(ctx context.Context, r Route) error
	SaveBusStop(ctx context.Context, s BusStop) error
	SaveNeighborhood(ctx context.Context, n Neighborhood) error
}

// Repository is the full persisted store consumed by the query layer.
// This follows the Dependency Inversion Principle - domain defines the interface
type Repository interface {
	ReadingStore
	HotspotStore
	TopologyStore

	// Health checks store connectivity
	Health(ctx context.Context) error
}
