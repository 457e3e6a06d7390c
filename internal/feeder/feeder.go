// Package feeder plays the part of the sensor fleet in demo deployments:
// on every tick it synthesizes one reading per fixture and hands the batch
// to its sinks, so the query side serves persisted data.
package feeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/thermora/backend/internal/catalog"
	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/internal/synth"
)

// Feeder produces a batch per interval
type Feeder struct {
	gen      *synth.Synthesizer
	sinks    []Sink
	interval time.Duration
	now      func() time.Time
}

// New creates a feeder. rng is owned by the feeder from now on.
func New(rng synth.Rand, loc *time.Location, locations []domain.Location, interval time.Duration, sinks ...Sink) *Feeder {
	return &Feeder{
		gen:      synth.New(rng, loc, locations),
		sinks:    sinks,
		interval: interval,
		now:      time.Now,
	}
}

// Tick produces one batch at the current time and publishes it to every sink.
// Sink failures are joined; a failing sink does not stop the others.
func (f *Feeder) Tick(ctx context.Context) (Batch, error) {
	now := f.now()
	b := Batch{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Readings:  f.gen.Snapshot(now),
	}

	var errs []error
	for _, s := range f.sinks {
		if err := s.Publish(ctx, b); err != nil {
			errs = append(errs, err)
		}
	}
	return b, errors.Join(errs...)
}

// Run ticks until ctx is done
func (f *Feeder) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	log.Printf("Feeder started: %d sinks, every %s", len(f.sinks), f.interval)
	for {
		b, err := f.Tick(ctx)
		if err != nil {
			log.Printf("Feeder batch %s: %v", b.ID, err)
		} else {
			log.Printf("Feeder batch %s: %d readings", b.ID, len(b.Readings))
		}

		select {
		case <-ctx.Done():
			log.Println("Feeder stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Close closes every sink
func (f *Feeder) Close() error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("feeder: failed to close %s sink: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SeedTopology writes the catalog routes, stops and neighborhoods into w
func SeedTopology(ctx context.Context, w domain.TopologyWriter) error {
	for _, r := range catalog.Routes() {
		if err := w.SaveRoute(ctx, r); err != nil {
			return fmt.Errorf("feeder: failed to seed route %s: %w", r.ID, err)
		}
	}
	for _, s := range catalog.BusStops() {
		if err := w.SaveBusStop(ctx, s); err != nil {
			return fmt.Errorf("feeder: failed to seed stop %s: %w", s.ID, err)
		}
	}
	for _, n := range catalog.Neighborhoods() {
		if err := w.SaveNeighborhood(ctx, n); err != nil {
			return fmt.Errorf("feeder: failed to seed neighborhood %s: %w", n.ID, err)
		}
	}
	return nil
}

// SeedHotspots records the curated hotspots for the local date of now
// unless the store already has hotspots for that date
func SeedHotspots(ctx context.Context, store domain.HotspotStore, now time.Time, loc *time.Location) error {
	date := now.In(loc).Format(domain.DateLayout)

	existing, err := store.HotspotsByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("feeder: failed to check hotspots: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, h := range catalog.Hotspots(date, now) {
		if err := store.SaveHotspot(ctx, h); err != nil {
			return fmt.Errorf("feeder: failed to seed hotspot %s: %w", h.Name, err)
		}
	}
	return nil
}
