package service

import (
	"context"
	"fmt"
	"time"

	"github.com/thermora/backend/internal/aggregate"
	"github.com/thermora/backend/internal/catalog"
	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/internal/synth"
	"github.com/thermora/backend/pkg/utils"
)

// Offsets applied to a synthesized sample standing in for yesterday's window
const (
	YesterdayMaxOffset = -2.0
	YesterdayAvgOffset = -1.8
)

// EmptyStoreStats is served when the store holds no current readings
var EmptyStoreStats = domain.TemperatureStats{
	MaxTemp:         38.5,
	AvgTemp:         34.2,
	ActiveHotspots:  4,
	MonitoredRoutes: 23,
	MaxTempChange:   2.1,
	AvgTempChange:   1.8,
}

// ThermalService answers every dashboard query. Each view reads the store
// first and synthesizes demo data when the store has nothing for it.
type ThermalService struct {
	repo      domain.Repository
	loc       *time.Location
	locations []domain.Location
	now       func() time.Time
	newRand   func() synth.Rand
}

// Option configures a ThermalService
type Option func(*ThermalService)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *ThermalService) { s.now = now }
}

// WithRandSource sets the factory called once per query for synthesized data.
// Queries run concurrently under Dashboard, so every call must return an
// independent source; never hand out one shared *rand.Rand.
func WithRandSource(newRand func() synth.Rand) Option {
	return func(s *ThermalService) { s.newRand = newRand }
}

// WithSeed makes every query draw from a source seeded with seed.
// A zero seed keeps wall-clock seeding.
func WithSeed(seed int64) Option {
	return func(s *ThermalService) {
		if seed != 0 {
			s.newRand = func() synth.Rand { return synth.NewRand(seed) }
		}
	}
}

// WithTimeZone sets the zone used for hours of day, dates and midnight
func WithTimeZone(loc *time.Location) Option {
	return func(s *ThermalService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithLocations replaces the sensor fixtures used for synthesis
func WithLocations(locations []domain.Location) Option {
	return func(s *ThermalService) { s.locations = locations }
}

// NewThermalService creates the query service over repo
func NewThermalService(repo domain.Repository, opts ...Option) *ThermalService {
	s := &ThermalService{
		repo:      repo,
		loc:       time.UTC,
		locations: catalog.Locations(),
		now:       time.Now,
		newRand:   func() synth.Rand { return synth.NewRand(0) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Health reports store connectivity
func (s *ThermalService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}

func (s *ThermalService) synthesizer() *synth.Synthesizer {
	return synth.New(s.newRand(), s.loc, s.locations)
}

func (s *ThermalService) today(now time.Time) string {
	return now.In(s.loc).Format(domain.DateLayout)
}

func (s *ThermalService) midnight(now time.Time) time.Time {
	local := now.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}

func (s *ThermalService) readingsBetween(from, to time.Time) func(ctx context.Context) ([]domain.Reading, error) {
	return func(ctx context.Context) ([]domain.Reading, error) {
		readings, err := s.repo.ReadingsBetween(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load readings: %w", err)
		}
		return readings, nil
	}
}

// readingsSince has no upper bound, so readings from a feeder whose clock
// runs slightly ahead still count as current
func (s *ThermalService) readingsSince(from time.Time) func(ctx context.Context) ([]domain.Reading, error) {
	return s.readingsBetween(from, time.Time{})
}

// CurrentReadings returns the readings of the trailing five minutes
func (s *ThermalService) CurrentReadings(ctx context.Context) ([]domain.Reading, error) {
	now := s.now()
	return firstOf(ctx,
		nonEmpty(s.readingsSince(now.Add(-synth.Window))),
		always(func() []domain.Reading { return s.synthesizer().Readings(now) }),
	)
}

// TemperatureStats compares the trailing five minutes against the same
// window one day earlier
func (s *ThermalService) TemperatureStats(ctx context.Context) (domain.TemperatureStats, error) {
	now := s.now()

	current, err := s.readingsSince(now.Add(-synth.Window))(ctx)
	if err != nil {
		return domain.TemperatureStats{}, err
	}
	currentSummary, ok := aggregate.Summarize(current)
	if !ok {
		return EmptyStoreStats, nil
	}

	dayAgo := now.Add(-24 * time.Hour)
	yesterday, err := firstOf(ctx,
		summaryOf(s.readingsBetween(dayAgo.Add(-synth.Window), dayAgo)),
		always(func() aggregate.Summary {
			sample, _ := aggregate.Summarize(s.synthesizer().Readings(now))
			return sample.Shift(YesterdayMaxOffset, YesterdayAvgOffset)
		}),
	)
	if err != nil {
		return domain.TemperatureStats{}, err
	}

	hotspots, err := firstOf(ctx,
		countOf(func(ctx context.Context) ([]domain.Hotspot, error) {
			return s.repo.HotspotsByDate(ctx, s.today(now))
		}),
		always(func() int { return len(catalog.Hotspots(s.today(now), now)) }),
	)
	if err != nil {
		return domain.TemperatureStats{}, fmt.Errorf("service: failed to count hotspots: %w", err)
	}

	routes, err := firstOf(ctx,
		countOf(s.repo.ActiveRoutes),
		always(func() int { return len(catalog.ActiveRoutes()) }),
	)
	if err != nil {
		return domain.TemperatureStats{}, fmt.Errorf("service: failed to count routes: %w", err)
	}

	return aggregate.Stats(currentSummary, yesterday, hotspots, routes), nil
}

func summaryOf(lookup func(ctx context.Context) ([]domain.Reading, error)) step[aggregate.Summary] {
	return func(ctx context.Context) (aggregate.Summary, bool, error) {
		readings, err := lookup(ctx)
		if err != nil {
			return aggregate.Summary{}, false, err
		}
		summary, ok := aggregate.Summarize(readings)
		return summary, ok, nil
	}
}

func countOf[T any](lookup func(ctx context.Context) ([]T, error)) step[int] {
	return func(ctx context.Context) (int, bool, error) {
		items, err := lookup(ctx)
		if err != nil {
			return 0, false, err
		}
		return len(items), len(items) > 0, nil
	}
}

// Evolution returns the hourly averages of the trailing 24 hours next to
// the long-run curve
func (s *ThermalService) Evolution(ctx context.Context) (domain.Evolution, error) {
	now := s.now()

	persisted, err := s.readingsBetween(now.Add(-24*time.Hour), now)(ctx)
	if err != nil {
		return domain.Evolution{}, err
	}

	rng := s.newRand()
	gen := synth.New(rng, s.loc, s.locations)

	buckets := aggregate.HourlyBuckets(now, persisted)
	today := make([]domain.HourlyPoint, 0, len(buckets))
	for _, b := range buckets {
		temp, err := firstOf(ctx,
			averageOf(func(context.Context) ([]domain.Reading, error) { return b.Readings, nil }),
			averageOf(func(context.Context) ([]domain.Reading, error) { return gen.Readings(b.Start), nil }),
			always(func() float64 { return synth.DiurnalCurve(b.Hour) }),
		)
		if err != nil {
			return domain.Evolution{}, err
		}
		today = append(today, domain.HourlyPoint{Hour: b.Hour, Temperature: utils.Round1(temp)})
	}

	historical := synth.Historical(rng)
	for i := range historical {
		historical[i].Temperature = utils.Round1(historical[i].Temperature)
	}

	return domain.Evolution{Today: today, Historical: historical}, nil
}

func averageOf(lookup func(ctx context.Context) ([]domain.Reading, error)) step[float64] {
	return func(ctx context.Context) (float64, bool, error) {
		readings, err := lookup(ctx)
		if err != nil {
			return 0, false, err
		}
		summary, ok := aggregate.Summarize(readings)
		return summary.Avg, ok, nil
	}
}

// Hotspots returns today's hotspots, hottest first
func (s *ThermalService) Hotspots(ctx context.Context) ([]domain.Hotspot, error) {
	now := s.now()
	date := s.today(now)

	hotspots, err := firstOf(ctx,
		nonEmpty(func(ctx context.Context) ([]domain.Hotspot, error) {
			hs, err := s.repo.HotspotsByDate(ctx, date)
			if err != nil {
				return nil, fmt.Errorf("service: failed to load hotspots: %w", err)
			}
			return hs, nil
		}),
		always(func() []domain.Hotspot { return catalog.Hotspots(date, now) }),
	)
	if err != nil {
		return nil, err
	}
	return aggregate.RankHotspots(hotspots), nil
}
