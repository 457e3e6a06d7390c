package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thermora/backend/internal/domain"
)

var (
	se      = domain.LatLng{Lat: -23.5505, Lng: -46.6333}
	paulist = domain.LatLng{Lat: -23.5614, Lng: -46.6558}
)

func TestDistance(t *testing.T) {
	assert.Zero(t, Distance(se, se))
	// Sé to Avenida Paulista is about 2.6km
	assert.InDelta(t, 2600, Distance(se, paulist), 150)
	assert.InDelta(t, Distance(se, paulist), Distance(paulist, se), 1e-9)
}

func TestPathLength(t *testing.T) {
	assert.Zero(t, PathLength(nil))
	assert.Zero(t, PathLength([]domain.LatLng{se}))
	assert.InDelta(t, 2*Distance(se, paulist), PathLength([]domain.LatLng{se, paulist, se}), 1e-6)
}

func TestAlong(t *testing.T) {
	path := []domain.LatLng{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 0, Lng: 3}}

	assert.Equal(t, domain.LatLng{}, Along(nil, 0.5))
	assert.Equal(t, path[0], Along(path[:1], 0.5))
	assert.Equal(t, path[0], Along(path, -0.2))
	assert.Equal(t, path[2], Along(path, 1.7))

	mid := Along(path, 0.5)
	assert.InDelta(t, 1.5, mid.Lng, 1e-6)
	assert.InDelta(t, 0, mid.Lat, 1e-9)

	quarter := Along(path, 0.25)
	assert.InDelta(t, 0.75, quarter.Lng, 1e-6)
}

func TestPolygonContains(t *testing.T) {
	ccw := []domain.LatLng{{Lat: -23.56, Lng: -46.64}, {Lat: -23.56, Lng: -46.62}, {Lat: -23.54, Lng: -46.62}, {Lat: -23.54, Lng: -46.64}}
	cw := []domain.LatLng{ccw[3], ccw[2], ccw[1], ccw[0]}

	for name, ring := range map[string][]domain.LatLng{"ccw": ccw, "cw": cw} {
		t.Run(name, func(t *testing.T) {
			pg := NewPolygon(ring)
			assert.True(t, pg.Contains(se))
			assert.False(t, pg.Contains(paulist))
		})
	}
}

func TestDegeneratePolygonContainsNothing(t *testing.T) {
	assert.False(t, NewPolygon(nil).Contains(se))
	assert.False(t, NewPolygon([]domain.LatLng{se, paulist}).Contains(se))
}
