// Package catalog holds the static city topology used by the dashboard:
// routes, stops, neighborhoods, sensor locations, curated hotspots and the bus fleet.
// Every function returns a fresh slice so callers may mutate the result.
package catalog

import "github.com/thermora/backend/internal/domain"

// Routes returns the monitored bus routes around Terminal Central
func Routes() []domain.Route {
	return []domain.Route{
		{
			ID:   "route-1",
			Name: "Linha 7411 - Terminal Central ↔ Jardim das Flores",
			Coordinates: []domain.LatLng{
				{Lat: -23.5505, Lng: -46.6333}, // Terminal Central
				{Lat: -23.5515, Lng: -46.6323},
				{Lat: -23.5525, Lng: -46.6313},
				{Lat: -23.5535, Lng: -46.6303},
				{Lat: -23.5545, Lng: -46.6293}, // Jardim das Flores
			},
			Active: true,
		},
		{
			ID:   "route-2",
			Name: "Linha 7412 - Vila Jaguara ↔ Terminal Central",
			Coordinates: []domain.LatLng{
				{Lat: -23.5485, Lng: -46.6353},
				{Lat: -23.5495, Lng: -46.6343},
				{Lat: -23.5505, Lng: -46.6333},
			},
			Active: true,
		},
		{
			ID:   "route-3",
			Name: "Linha 7413 - Vila dos Remédios ↔ Cidade das Flores",
			Coordinates: []domain.LatLng{
				{Lat: -23.5475, Lng: -46.6363},
				{Lat: -23.5485, Lng: -46.6353},
				{Lat: -23.5495, Lng: -46.6343},
				{Lat: -23.5515, Lng: -46.6323},
				{Lat: -23.5525, Lng: -46.6313},
			},
			Active: true,
		},
		{
			ID:   "route-4",
			Name: "Linha 7414 - Jardim Santa Cecília ↔ Praça do Mercado",
			Coordinates: []domain.LatLng{
				{Lat: -23.5465, Lng: -46.6373},
				{Lat: -23.5475, Lng: -46.6363},
				{Lat: -23.5485, Lng: -46.6353},
				{Lat: -23.5495, Lng: -46.6343},
				{Lat: -23.5505, Lng: -46.6333},
			},
			Active: true,
		},
		{
			ID:   "route-5",
			Name: "Linha 7415 - Av. Principal - Zona Norte ↔ Terminal Central",
			Coordinates: []domain.LatLng{
				{Lat: -23.5455, Lng: -46.6383},
				{Lat: -23.5465, Lng: -46.6373},
				{Lat: -23.5475, Lng: -46.6363},
				{Lat: -23.5485, Lng: -46.6353},
				{Lat: -23.5495, Lng: -46.6343},
				{Lat: -23.5505, Lng: -46.6333},
			},
			Active: true,
		},
		{
			ID:   "route-6",
			Name: "Linha 7416 - Rua Comercial - Centro ↔ Jardim Piratininga",
			Coordinates: []domain.LatLng{
				{Lat: -23.5505, Lng: -46.6333},
				{Lat: -23.5515, Lng: -46.6323},
				{Lat: -23.5525, Lng: -46.6313},
				{Lat: -23.5535, Lng: -46.6303},
				{Lat: -23.5545, Lng: -46.6293},
				{Lat: -23.5555, Lng: -46.6283},
			},
			Active: true,
		},
		{
			ID:   "route-7",
			Name: "Linha 7417 - Jardim São Vicente ↔ Quitaúna",
			Coordinates: []domain.LatLng{
				{Lat: -23.5445, Lng: -46.6393},
				{Lat: -23.5455, Lng: -46.6383},
				{Lat: -23.5465, Lng: -46.6373},
				{Lat: -23.5475, Lng: -46.6363},
				{Lat: -23.5485, Lng: -46.6353},
				{Lat: -23.5495, Lng: -46.6343},
			},
			Active: true,
		},
		{
			ID:   "route-8",
			Name: "Linha 7418 - Vila Serventina ↔ Terminal Central",
			Coordinates: []domain.LatLng{
				{Lat: -23.5435, Lng: -46.6403},
				{Lat: -23.5445, Lng: -46.6393},
				{Lat: -23.5455, Lng: -46.6383},
				{Lat: -23.5465, Lng: -46.6373},
				{Lat: -23.5475, Lng: -46.6363},
				{Lat: -23.5485, Lng: -46.6353},
				{Lat: -23.5495, Lng: -46.6343},
				{Lat: -23.5505, Lng: -46.6333},
			},
			Active: true,
		},
		{
			ID:   "route-9",
			Name: "Linha 7419 - Jardim Aliança ↔ Praça do Mercado",
			Coordinates: []domain.LatLng{
				{Lat: -23.5425, Lng: -46.6413},
				{Lat: -23.5435, Lng: -46.6403},
				{Lat: -23.5445, Lng: -46.6393},
				{Lat: -23.5455, Lng: -46.6383},
				{Lat: -23.5465, Lng: -46.6373},
				{Lat: -23.5475, Lng: -46.6363},
				{Lat: -23.5485, Lng: -46.6353},
				{Lat: -23.5495, Lng: -46.6343},
				{Lat: -23.5505, Lng: -46.6333},
			},
			Active: true,
		},
		{
			ID:   "route-10",
			Name: "Linha 7420 - Jardim Rochdal ↔ Terminal Central",
			Coordinates: []domain.LatLng{
				{Lat: -23.5415, Lng: -46.6423},
				{Lat: -23.5425, Lng: -46.6413},
				{Lat: -23.5435, Lng: -46.6403},
				{Lat: -23.5445, Lng: -46.6393},
				{Lat: -23.5455, Lng: -46.6383},
				{Lat: -23.5465, Lng: -46.6373},
				{Lat: -23.5475, Lng: -46.6363},
				{Lat: -23.5485, Lng: -46.6353},
				{Lat: -23.5495, Lng: -46.6343},
				{Lat: -23.5505, Lng: -46.6333},
			},
			Active: true,
		},
	}
}

// ActiveRoutes filters Routes to the active ones
func ActiveRoutes() []domain.Route {
	all := Routes()
	active := all[:0]
	for _, r := range all {
		if r.Active {
			active = append(active, r)
		}
	}
	return active
}

// RouteByID looks up a catalog route
func RouteByID(id string) (domain.Route, bool) {
	for _, r := range Routes() {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Route{}, false
}
