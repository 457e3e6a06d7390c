// Package synth generates plausible thermal telemetry for demo mode, when the
// store holds nothing for the requested window.
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/pkg/utils"
)

// Rand is the random source used by the synthesizer. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a source seeded with seed, or with the wall clock when seed is 0
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sampling window and tick of one synthesized batch
const (
	Window = 300 * time.Second
	Tick   = 30 * time.Second
)

// Generation constants
const (
	BaseTemperature = 30.0
	MaxJitter       = 1.5     // °C, either direction
	PositionNoise   = 0.00025 // degrees, either direction
)

// Synthesizer produces readings for a fixed set of locations
type Synthesizer struct {
	rng       Rand
	loc       *time.Location
	locations []domain.Location
}

// New creates a synthesizer. Hours of day are evaluated in loc (UTC when nil).
func New(rng Rand, loc *time.Location, locations []domain.Location) *Synthesizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Synthesizer{rng: rng, loc: loc, locations: locations}
}

// Readings returns one reading per location for each tick of the window
// ending at now, grouped by tick and then by location order.
func (s *Synthesizer) Readings(now time.Time) []domain.Reading {
	ticks := int(Window / Tick)
	readings := make([]domain.Reading, 0, ticks*len(s.locations))

	for i := 0; i < ticks; i++ {
		readings = append(readings, s.Snapshot(now.Add(-Window+time.Duration(i)*Tick))...)
	}
	return readings
}

// Snapshot returns one reading per location taken at ts
func (s *Synthesizer) Snapshot(ts time.Time) []domain.Reading {
	readings := make([]domain.Reading, 0, len(s.locations))
	for _, l := range s.locations {
		readings = append(readings, s.reading(l, ts))
	}
	return readings
}

func (s *Synthesizer) reading(l domain.Location, ts time.Time) domain.Reading {
	temp := ExpectedTemperature(l, ts.In(s.loc).Hour()) + s.symmetric(MaxJitter)

	return domain.Reading{
		Timestamp:   ts,
		Lat:         l.Lat + s.symmetric(PositionNoise),
		Lng:         l.Lng + s.symmetric(PositionNoise),
		Temperature: utils.Clamp(temp, domain.MinTemperature, domain.MaxTemperature),
		DeviceID:    l.DeviceID,
		RouteID:     l.RouteID,
	}
}

// symmetric draws uniformly from [-amplitude, amplitude)
func (s *Synthesizer) symmetric(amplitude float64) float64 {
	return (s.rng.Float64()*2 - 1) * amplitude
}

// DiurnalFactor is the daytime heating added for an hour of day
func DiurnalFactor(hour int) float64 {
	switch {
	case hour >= 12 && hour <= 16:
		return 3
	case hour >= 10 && hour <= 18:
		return 2
	default:
		return 1
	}
}

// ExpectedTemperature is the pre-jitter temperature of a location at an hour of day
func ExpectedTemperature(l domain.Location, hour int) float64 {
	return BaseTemperature + l.BaseTempOffset + DiurnalFactor(hour)
}

// DiurnalCurve is the noiseless daily cycle used when nothing else is available
func DiurnalCurve(hour int) float64 {
	return BaseTemperature + 4*math.Sin(float64(hour-6)/12*math.Pi)
}
