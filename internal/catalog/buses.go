package catalog

import "github.com/thermora/backend/internal/domain"

// BusLines returns the lines the onboard-sensor buses drive along
func BusLines() []domain.BusLine {
	return []domain.BusLine{
		{
			ID:    "line-875M",
			Name:  "Linha 875M - Pinheiros/Centro",
			Color: "#3b82f6",
			Coordinates: []domain.LatLng{
				{Lat: -23.5629, Lng: -46.6933}, // Pinheiros
				{Lat: -23.5609, Lng: -46.6878},
				{Lat: -23.5589, Lng: -46.6823},
				{Lat: -23.5569, Lng: -46.6768},
				{Lat: -23.5549, Lng: -46.6713},
				{Lat: -23.5529, Lng: -46.6658},
				{Lat: -23.5509, Lng: -46.6603},
				{Lat: -23.5489, Lng: -46.6548},
				{Lat: -23.5469, Lng: -46.6493},
				{Lat: -23.5449, Lng: -46.6438}, // Centro
			},
		},
		{
			ID:    "line-477A",
			Name:  "Linha 477A - Vila Madalena/Paulista",
			Color: "#ef4444",
			Coordinates: []domain.LatLng{
				{Lat: -23.5459, Lng: -46.6933},
				{Lat: -23.5479, Lng: -46.6878},
				{Lat: -23.5499, Lng: -46.6823},
				{Lat: -23.5519, Lng: -46.6768},
				{Lat: -23.5539, Lng: -46.6713},
				{Lat: -23.5559, Lng: -46.6658},
				{Lat: -23.5579, Lng: -46.6603},
			},
		},
		{
			ID:    "line-702U",
			Name:  "Linha 702U - Morumbi/Berrini",
			Color: "#10b981",
			Coordinates: []domain.LatLng{
				{Lat: -23.6133, Lng: -46.7033},
				{Lat: -23.6093, Lng: -46.6978},
				{Lat: -23.6053, Lng: -46.6923},
				{Lat: -23.6013, Lng: -46.6868},
				{Lat: -23.5973, Lng: -46.6813},
				{Lat: -23.5933, Lng: -46.6758},
				{Lat: -23.5893, Lng: -46.6703},
			},
		},
		{
			ID:    "line-856P",
			Name:  "Linha 856P - Lapa/República",
			Color: "#f59e0b",
			Coordinates: []domain.LatLng{
				{Lat: -23.5279, Lng: -46.7033},
				{Lat: -23.5299, Lng: -46.6978},
				{Lat: -23.5319, Lng: -46.6923},
				{Lat: -23.5339, Lng: -46.6868},
				{Lat: -23.5359, Lng: -46.6813},
				{Lat: -23.5379, Lng: -46.6758},
				{Lat: -23.5399, Lng: -46.6703},
				{Lat: -23.5419, Lng: -46.6648},
				{Lat: -23.5439, Lng: -46.6593},
			},
		},
	}
}

// Buses returns the fleet with their starting positions
func Buses() []domain.Bus {
	return []domain.Bus{
		{ID: "bus-1", LineID: "line-875M", Name: "Ônibus 875M-01", Temperature: 32.5, SpeedKmh: 25, StartPosition: 0.2},
		{ID: "bus-2", LineID: "line-875M", Name: "Ônibus 875M-02", Temperature: 31.8, SpeedKmh: 30, StartPosition: 0.6},
		{ID: "bus-3", LineID: "line-477A", Name: "Ônibus 477A-01", Temperature: 33.2, SpeedKmh: 20, StartPosition: 0.3},
		{ID: "bus-4", LineID: "line-477A", Name: "Ônibus 477A-02", Temperature: 30.9, SpeedKmh: 28, StartPosition: 0.8},
		{ID: "bus-5", LineID: "line-702U", Name: "Ônibus 702U-01", Temperature: 34.1, SpeedKmh: 22, StartPosition: 0.4},
		{ID: "bus-6", LineID: "line-702U", Name: "Ônibus 702U-02", Temperature: 29.7, SpeedKmh: 26, StartPosition: 0.7},
		{ID: "bus-7", LineID: "line-856P", Name: "Ônibus 856P-01", Temperature: 35.2, SpeedKmh: 18, StartPosition: 0.15},
		{ID: "bus-8", LineID: "line-856P", Name: "Ônibus 856P-02", Temperature: 31.5, SpeedKmh: 24, StartPosition: 0.55},
	}
}
