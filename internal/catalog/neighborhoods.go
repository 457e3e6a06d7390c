package catalog

import "github.com/thermora/backend/internal/domain"

// Neighborhoods returns the monitored neighborhood polygons.
// Rings are counter-clockwise when viewed on a north-up map.
func Neighborhoods() []domain.Neighborhood {
	rect := func(south, west, north, east float64) []domain.LatLng {
		return []domain.LatLng{
			{Lat: south, Lng: west},
			{Lat: south, Lng: east},
			{Lat: north, Lng: east},
			{Lat: north, Lng: west},
		}
	}

	return []domain.Neighborhood{
		{ID: "nb-se", Name: "Sé", Boundaries: rect(-23.5560, -46.6390, -23.5440, -46.6260), Priority: domain.PriorityHigh, Status: domain.NeighborhoodOnline, Active: true},
		{ID: "nb-republica", Name: "República", Boundaries: rect(-23.5480, -46.6500, -23.5380, -46.6391), Priority: domain.PriorityHigh, Status: domain.NeighborhoodOnline, Active: true},
		{ID: "nb-liberdade", Name: "Liberdade", Boundaries: rect(-23.5680, -46.6420, -23.5561, -46.6280), Priority: domain.PriorityHigh, Status: domain.NeighborhoodOnline, Active: true},
		{ID: "nb-bela-vista", Name: "Bela Vista", Boundaries: rect(-23.5680, -46.6560, -23.5561, -46.6421), Priority: domain.PriorityMedium, Status: domain.NeighborhoodOnline, Active: true},
		{ID: "nb-bras", Name: "Brás", Boundaries: rect(-23.5500, -46.6259, -23.5360, -46.6080), Priority: domain.PriorityMedium, Status: domain.NeighborhoodOnline, Active: true},
		{ID: "nb-mooca", Name: "Mooca", Boundaries: rect(-23.5680, -46.6079, -23.5501, -46.5900), Priority: domain.PriorityMedium, Status: domain.NeighborhoodOffline, Active: true},
		{ID: "nb-pinheiros", Name: "Pinheiros", Boundaries: rect(-23.5750, -46.7100, -23.5600, -46.6900), Priority: domain.PriorityLow, Status: domain.NeighborhoodOnline, Active: true},
		{ID: "nb-santana", Name: "Santana", Boundaries: rect(-23.5100, -46.6350, -23.4950, -46.6150), Priority: domain.PriorityLow, Status: domain.NeighborhoodOffline, Active: false},
	}
}

// ActiveNeighborhoods filters Neighborhoods to the active ones
func ActiveNeighborhoods() []domain.Neighborhood {
	all := Neighborhoods()
	active := all[:0]
	for _, n := range all {
		if n.Active {
			active = append(active, n)
		}
	}
	return active
}
