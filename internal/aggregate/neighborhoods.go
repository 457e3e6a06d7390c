package aggregate

import (
	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/internal/geo"
	"github.com/thermora/backend/pkg/utils"
)

// NeighborhoodHeat summarizes the readings falling inside each neighborhood.
// Neighborhoods without readings are reported with zero counts.
func NeighborhoodHeat(neighborhoods []domain.Neighborhood, readings []domain.Reading) []domain.NeighborhoodHeat {
	out := make([]domain.NeighborhoodHeat, 0, len(neighborhoods))
	for _, n := range neighborhoods {
		poly := geo.NewPolygon(n.Boundaries)

		var inside []domain.Reading
		for _, r := range readings {
			if poly.Contains(domain.LatLng{Lat: r.Lat, Lng: r.Lng}) {
				inside = append(inside, r)
			}
		}

		heat := domain.NeighborhoodHeat{
			NeighborhoodID: n.ID,
			Name:           n.Name,
			Priority:       n.Priority,
		}
		if s, ok := Summarize(inside); ok {
			heat.ReadingCount = s.Count
			heat.AvgTemp = utils.Round1(s.Avg)
			heat.MaxTemp = utils.Round1(s.Max)
		}
		out = append(out, heat)
	}
	return out
}
