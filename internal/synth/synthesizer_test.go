package synth

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermora/backend/internal/domain"
)

// midRand always returns 0.5, which maps to zero jitter
type midRand struct{}

func (midRand) Float64() float64 { return 0.5 }

// edgeRand always returns its value
type edgeRand float64

func (r edgeRand) Float64() float64 { return float64(r) }

var se = domain.Location{Lat: -23.5505, Lng: -46.6333, Name: "Sé", BaseTempOffset: 6, RouteID: "route-1", DeviceID: "device-route-1-0"}

func TestDiurnalFactor(t *testing.T) {
	cases := map[int]float64{0: 1, 9: 1, 10: 2, 11: 2, 12: 3, 14: 3, 16: 3, 17: 2, 18: 2, 19: 1, 23: 1}
	for hour, want := range cases {
		assert.Equal(t, want, DiurnalFactor(hour), "hour %d", hour)
	}
}

func TestExpectedTemperatureAtMidday(t *testing.T) {
	for hour := 12; hour <= 16; hour++ {
		assert.Equal(t, 39.0, ExpectedTemperature(se, hour))
	}
}

func TestReadingsWindow(t *testing.T) {
	now := time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC)
	other := domain.Location{Lat: -23.6, Lng: -46.7, BaseTempOffset: 1, DeviceID: "b"}

	readings := New(midRand{}, time.UTC, []domain.Location{se, other}).Readings(now)
	require.Len(t, readings, 20)

	for i, r := range readings {
		tick := i / 2
		assert.True(t, r.Timestamp.Equal(now.Add(-300*time.Second+time.Duration(tick)*30*time.Second)), "reading %d", i)
	}
	assert.Equal(t, "device-route-1-0", readings[0].DeviceID)
	assert.Equal(t, "b", readings[1].DeviceID)
	assert.True(t, readings[19].Timestamp.Equal(now.Add(-30*time.Second)))

	// zero jitter leaves the expected temperature and position untouched
	assert.Equal(t, 39.0, readings[0].Temperature)
	assert.Equal(t, se.Lat, readings[0].Lat)
	assert.Equal(t, se.Lng, readings[0].Lng)
	assert.Equal(t, "route-1", readings[0].RouteID)
}

func TestReadingsUseConfiguredZone(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	// 13:02 UTC is 10:02 in São Paulo
	now := time.Date(2026, 1, 15, 13, 2, 0, 0, time.UTC)

	readings := New(midRand{}, brt, []domain.Location{se}).Readings(now)
	assert.Equal(t, 38.0, readings[len(readings)-1].Temperature)

	// nil zone means UTC
	readings = New(midRand{}, nil, []domain.Location{se}).Readings(now)
	assert.Equal(t, 39.0, readings[len(readings)-1].Temperature)
}

func TestReadingsJitterBounds(t *testing.T) {
	now := time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC)

	high := New(edgeRand(0.999999), time.UTC, []domain.Location{se}).Readings(now)[0]
	assert.InDelta(t, 40.5, high.Temperature, 1e-4)
	assert.InDelta(t, se.Lat+PositionNoise, high.Lat, 1e-9)

	low := New(edgeRand(0), time.UTC, []domain.Location{se}).Readings(now)[0]
	assert.Equal(t, 37.5, low.Temperature)
	assert.InDelta(t, se.Lng-PositionNoise, low.Lng, 1e-12)
}

func TestReadingsAreClamped(t *testing.T) {
	now := time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC)
	scorching := domain.Location{BaseTempOffset: 20, DeviceID: "hot"}
	freezing := domain.Location{BaseTempOffset: -20, DeviceID: "cold"}

	for _, r := range New(NewRand(3), time.UTC, []domain.Location{scorching, freezing}).Readings(now) {
		assert.GreaterOrEqual(t, r.Temperature, domain.MinTemperature)
		assert.LessOrEqual(t, r.Temperature, domain.MaxTemperature)
	}
}

func TestSeededReadingsAreReproducible(t *testing.T) {
	now := time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC)
	locations := []domain.Location{se}

	a := New(NewRand(99), time.UTC, locations).Readings(now)
	b := New(NewRand(99), time.UTC, locations).Readings(now)
	assert.Equal(t, a, b)
}

func TestSnapshot(t *testing.T) {
	ts := time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC)
	readings := New(midRand{}, time.UTC, []domain.Location{se, se}).Snapshot(ts)
	require.Len(t, readings, 2)
	for _, r := range readings {
		assert.True(t, r.Timestamp.Equal(ts))
	}
}

func TestDiurnalCurve(t *testing.T) {
	assert.InDelta(t, 30.0, DiurnalCurve(6), 1e-9)
	assert.InDelta(t, 34.0, DiurnalCurve(12), 1e-9)
	assert.InDelta(t, 26.0, DiurnalCurve(0), 1e-9)
}

func TestHistorical(t *testing.T) {
	points := Historical(midRand{})
	require.Len(t, points, 24)
	for h, p := range points {
		assert.Equal(t, h, p.Hour)
		assert.InDelta(t, HistoricalBase+4*math.Sin(float64(h-6)/12*math.Pi), p.Temperature, 1e-9)
	}

	noisy := Historical(NewRand(5))
	for h, p := range noisy {
		assert.InDelta(t, points[h].Temperature, p.Temperature, 1.0)
	}
}
