package catalog

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermora/backend/internal/domain"
)

func TestLocations(t *testing.T) {
	locations := Locations()
	require.Len(t, locations, 80)

	ids := make(map[string]bool)
	for _, l := range locations {
		assert.False(t, ids[l.DeviceID], "duplicate device id %s", l.DeviceID)
		ids[l.DeviceID] = true

		_, ok := RouteByID(l.RouteID)
		assert.True(t, ok, "fixture %s references unknown route %s", l.Name, l.RouteID)
	}

	assert.Equal(t, "Sé", locations[0].Name)
	assert.Equal(t, 6.0, locations[0].BaseTempOffset)
	assert.Equal(t, "device-route-1-0", locations[0].DeviceID)
}

func TestStructureIsIdempotent(t *testing.T) {
	assert.Equal(t, Routes(), Routes())
	assert.Equal(t, BusStops(), BusStops())
	assert.Equal(t, Neighborhoods(), Neighborhoods())
	assert.Equal(t, Locations(), Locations())

	// callers may mutate what they get back
	routes := Routes()
	routes[0].Name = "changed"
	assert.NotEqual(t, "changed", Routes()[0].Name)
}

func TestRoutesAndStops(t *testing.T) {
	assert.Len(t, Routes(), 10)
	assert.Len(t, ActiveRoutes(), 10)
	assert.Len(t, BusStops(), 15)

	for _, s := range BusStops() {
		require.NotEmpty(t, s.RouteIDs, s.ID)
		for _, id := range s.RouteIDs {
			_, ok := RouteByID(id)
			assert.True(t, ok, "stop %s references unknown route %s", s.ID, id)
		}
	}

	_, ok := RouteByID("route-404")
	assert.False(t, ok)
}

func TestNeighborhoods(t *testing.T) {
	all := Neighborhoods()
	require.Len(t, all, 8)
	assert.Len(t, ActiveNeighborhoods(), 7)
	for _, n := range all {
		assert.GreaterOrEqual(t, len(n.Boundaries), 3, n.ID)
	}
}

func TestHotspots(t *testing.T) {
	now := time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC)
	hotspots := Hotspots("2026-01-15", now)
	require.Len(t, hotspots, 5)

	assert.True(t, sort.SliceIsSorted(hotspots, func(i, j int) bool { return hotspots[i].MaxTemp > hotspots[j].MaxTemp }))
	assert.Equal(t, domain.RiskEmergency, hotspots[0].RiskLevel)
	for _, h := range hotspots {
		assert.Equal(t, "2026-01-15", h.Date)
		assert.True(t, h.StartTime.Equal(now.Add(-time.Duration(h.DurationMinutes)*time.Minute)))
	}
}

func TestBusFleet(t *testing.T) {
	lines := make(map[string]bool)
	for _, l := range BusLines() {
		lines[l.ID] = true
		assert.GreaterOrEqual(t, len(l.Coordinates), 2)
	}
	assert.Len(t, lines, 4)

	buses := Buses()
	assert.Len(t, buses, 8)
	for _, b := range buses {
		assert.True(t, lines[b.LineID], b.ID)
		assert.GreaterOrEqual(t, b.StartPosition, 0.0)
		assert.LessOrEqual(t, b.StartPosition, 1.0)
	}
}
