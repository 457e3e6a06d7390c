package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermora/backend/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func TestReadingsBetweenIsHalfOpenAndOrdered(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	err := repo.SaveReadings(ctx, []domain.Reading{
		{Timestamp: base.Add(2 * time.Minute), Lat: -23.55, Lng: -46.63, Temperature: 33.1, DeviceID: "device-route-1-0", RouteID: "route-1"},
		{Timestamp: base, Lat: -23.56, Lng: -46.64, Temperature: 31.4, DeviceID: "device-route-1-1"},
		{Timestamp: base.Add(5 * time.Minute), Lat: -23.57, Lng: -46.65, Temperature: 35.0, DeviceID: "device-route-2-0"},
	})
	require.NoError(t, err)

	got, err := repo.ReadingsBetween(ctx, base, base.Add(5*time.Minute))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Timestamp.Equal(base))
	assert.Equal(t, "", got[0].RouteID)
	assert.Equal(t, "route-1", got[1].RouteID)
	assert.InDelta(t, 33.1, got[1].Temperature, 1e-9)
}

func TestReadingsBetweenZeroEndIsOpen(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveReadings(ctx, []domain.Reading{
		{Timestamp: base.Add(-time.Minute), DeviceID: "early"},
		{Timestamp: base, DeviceID: "at"},
		{Timestamp: base.Add(48 * time.Hour), DeviceID: "ahead"},
	}))

	got, err := repo.ReadingsBetween(ctx, base, time.Time{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "at", got[0].DeviceID)
	assert.Equal(t, "ahead", got[1].DeviceID)
}

func TestReadingsBetweenEmpty(t *testing.T) {
	repo := newTestRepository(t)
	got, err := repo.ReadingsBetween(context.Background(), time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadingsByDevice(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveReadings(ctx, []domain.Reading{
		{Timestamp: base.Add(-time.Hour), Temperature: 29, DeviceID: "a"},
		{Timestamp: base.Add(time.Minute), Temperature: 30, DeviceID: "a"},
		{Timestamp: base.Add(2 * time.Minute), Temperature: 31, DeviceID: "b"},
	}))

	got, err := repo.ReadingsByDevice(ctx, "a", base)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 30.0, got[0].Temperature, 1e-9)
}

func TestHotspotsByDate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	start := time.Date(2026, 1, 15, 13, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveHotspot(ctx, domain.Hotspot{
		Name: "Sé", Lat: -23.55, Lng: -46.63, MaxTemp: 38.5, DurationMinutes: 45,
		Population: 12000, RiskLevel: domain.RiskEmergency, Date: "2026-01-15", StartTime: start,
	}))
	require.NoError(t, repo.SaveHotspot(ctx, domain.Hotspot{Name: "Brás", Date: "2026-01-14", RiskLevel: domain.RiskCaution}))

	got, err := repo.HotspotsByDate(ctx, "2026-01-15")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.RiskEmergency, got[0].RiskLevel)
	assert.Equal(t, 45, got[0].DurationMinutes)
	assert.True(t, got[0].StartTime.Equal(start))
}

func TestTopologyRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	route := domain.Route{
		ID: "route-1", Name: "Linha 7411", Active: true,
		Coordinates: []domain.LatLng{{Lat: -23.55, Lng: -46.63}, {Lat: -23.56, Lng: -46.64}},
	}
	require.NoError(t, repo.SaveRoute(ctx, route))
	require.NoError(t, repo.SaveRoute(ctx, domain.Route{ID: "route-2", Name: "Linha 7412"}))

	route.Name = "Linha 7411 Expresso"
	require.NoError(t, repo.SaveRoute(ctx, route))

	routes, err := repo.ActiveRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, route, routes[0])

	require.NoError(t, repo.SaveBusStop(ctx, domain.BusStop{ID: "stop-1", Name: "Praça da Sé", Lat: -23.55, Lng: -46.63, RouteIDs: []string{"route-1", "route-3"}}))
	stops, err := repo.BusStops(ctx)
	require.NoError(t, err)
	require.Len(t, stops, 1)
	assert.Equal(t, []string{"route-1", "route-3"}, stops[0].RouteIDs)

	nb := domain.Neighborhood{
		ID: "nb-se", Name: "Sé", Priority: domain.PriorityHigh, Status: domain.NeighborhoodOnline, Active: true,
		Boundaries: []domain.LatLng{{Lat: -23.56, Lng: -46.64}, {Lat: -23.56, Lng: -46.62}, {Lat: -23.54, Lng: -46.62}},
	}
	require.NoError(t, repo.SaveNeighborhood(ctx, nb))
	require.NoError(t, repo.SaveNeighborhood(ctx, domain.Neighborhood{ID: "nb-off", Name: "Off", Priority: domain.PriorityLow, Status: domain.NeighborhoodOffline}))

	nbs, err := repo.ActiveNeighborhoods(ctx)
	require.NoError(t, err)
	require.Len(t, nbs, 1)
	assert.Equal(t, nb, nbs[0])
}

func TestHealth(t *testing.T) {
	repo := newTestRepository(t)
	assert.NoError(t, repo.Health(context.Background()))
}
