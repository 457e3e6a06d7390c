// Package geo wraps the s2 geometry library for the few spherical
// computations the dashboard needs: distances along routes, position
// interpolation and neighborhood containment.
package geo

import (
	"github.com/golang/geo/s2"

	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/pkg/utils"
)

func toLatLng(p domain.LatLng) s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// Distance returns the great-circle distance between a and b in meters
func Distance(a, b domain.LatLng) float64 {
	return utils.Haversine(a.Lat, a.Lng, b.Lat, b.Lng) * 1000
}

// PathLength returns the length of a polyline in meters
func PathLength(path []domain.LatLng) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}
	return total
}

// Along returns the point at fraction t (0..1) of the polyline length.
// Out of range fractions are clamped to the endpoints.
func Along(path []domain.LatLng, t float64) domain.LatLng {
	if len(path) == 0 {
		return domain.LatLng{}
	}
	if len(path) == 1 || t <= 0 {
		return path[0]
	}
	if t >= 1 {
		return path[len(path)-1]
	}

	target := PathLength(path) * t
	for i := 1; i < len(path); i++ {
		seg := Distance(path[i-1], path[i])
		if seg == 0 {
			continue
		}
		if target <= seg {
			frac := target / seg
			p := s2.Interpolate(frac, s2.PointFromLatLng(toLatLng(path[i-1])), s2.PointFromLatLng(toLatLng(path[i])))
			ll := s2.LatLngFromPoint(p)
			return domain.LatLng{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}
		}
		target -= seg
	}
	return path[len(path)-1]
}

// Polygon is a neighborhood boundary ready for containment tests
type Polygon struct {
	loop *s2.Loop
}

// NewPolygon builds a polygon from an open ring. Winding order does not
// matter: the loop is normalized so it encloses the smaller area.
// Rings with fewer than three vertices contain nothing.
func NewPolygon(ring []domain.LatLng) *Polygon {
	if len(ring) < 3 {
		return &Polygon{}
	}
	points := make([]s2.Point, 0, len(ring))
	for _, p := range ring {
		points = append(points, s2.PointFromLatLng(toLatLng(p)))
	}
	loop := s2.LoopFromPoints(points)
	loop.Normalize()
	return &Polygon{loop: loop}
}

// Contains reports whether p lies inside the polygon
func (pg *Polygon) Contains(p domain.LatLng) bool {
	if pg.loop == nil {
		return false
	}
	return pg.loop.ContainsPoint(s2.PointFromLatLng(toLatLng(p)))
}
