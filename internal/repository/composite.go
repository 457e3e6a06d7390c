// Package repository combines store adapters into one domain.Repository.
package repository

import (
	"context"

	"github.com/thermora/backend/internal/domain"
)

// HealthChecker is anything with a connectivity check
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Composite routes readings to one store and everything else to another,
// e.g. InfluxDB for readings and PostgreSQL for hotspots and topology.
type Composite struct {
	domain.ReadingStore
	domain.HotspotStore
	domain.TopologyStore
	checks []HealthChecker
}

// WithReadings replaces the reading store of base
func WithReadings(base domain.Repository, readings domain.ReadingStore) *Composite {
	c := &Composite{
		ReadingStore:  readings,
		HotspotStore:  base,
		TopologyStore: base,
		checks:        []HealthChecker{base},
	}
	if hc, ok := readings.(HealthChecker); ok {
		c.checks = append(c.checks, hc)
	}
	return c
}

// Health fails on the first failing store
func (c *Composite) Health(ctx context.Context) error {
	for _, hc := range c.checks {
		if err := hc.Health(ctx); err != nil {
			return err
		}
	}
	return nil
}

var _ domain.Repository = (*Composite)(nil)
