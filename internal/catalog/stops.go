package catalog

import "github.com/thermora/backend/internal/domain"

// BusStops returns the stops along the catalog routes
func BusStops() []domain.BusStop {
	return []domain.BusStop{
		{ID: "stop-1", Name: "Terminal Central", Lat: -23.5505, Lng: -46.6333, RouteIDs: []string{"route-1", "route-2", "route-5", "route-6", "route-8", "route-10"}},
		{ID: "stop-2", Name: "Jardim das Flores", Lat: -23.5545, Lng: -46.6293, RouteIDs: []string{"route-1"}},
		{ID: "stop-3", Name: "Vila Jaguara", Lat: -23.5485, Lng: -46.6353, RouteIDs: []string{"route-2", "route-3", "route-4"}},
		{ID: "stop-4", Name: "Vila dos Remédios", Lat: -23.5475, Lng: -46.6363, RouteIDs: []string{"route-3", "route-4"}},
		{ID: "stop-5", Name: "Jardim Santa Cecília", Lat: -23.5465, Lng: -46.6373, RouteIDs: []string{"route-4", "route-5", "route-7"}},
		{ID: "stop-6", Name: "Praça do Mercado", Lat: -23.5505, Lng: -46.6333, RouteIDs: []string{"route-4", "route-9"}},
		{ID: "stop-7", Name: "Av. Principal - Zona Norte", Lat: -23.5455, Lng: -46.6383, RouteIDs: []string{"route-5", "route-7", "route-8"}},
		{ID: "stop-8", Name: "Rua Comercial - Centro", Lat: -23.5505, Lng: -46.6333, RouteIDs: []string{"route-6"}},
		{ID: "stop-9", Name: "Jardim Piratininga", Lat: -23.5555, Lng: -46.6283, RouteIDs: []string{"route-6"}},
		{ID: "stop-10", Name: "Jardim São Vicente", Lat: -23.5445, Lng: -46.6393, RouteIDs: []string{"route-7", "route-8"}},
		{ID: "stop-11", Name: "Quitaúna", Lat: -23.5495, Lng: -46.6343, RouteIDs: []string{"route-7", "route-8", "route-9"}},
		{ID: "stop-12", Name: "Vila Serventina", Lat: -23.5435, Lng: -46.6403, RouteIDs: []string{"route-8", "route-9"}},
		{ID: "stop-13", Name: "Jardim Aliança", Lat: -23.5425, Lng: -46.6413, RouteIDs: []string{"route-9", "route-10"}},
		{ID: "stop-14", Name: "Jardim Rochdal", Lat: -23.5415, Lng: -46.6423, RouteIDs: []string{"route-10"}},
		{ID: "stop-15", Name: "Cidade das Flores", Lat: -23.5525, Lng: -46.6313, RouteIDs: []string{"route-3", "route-6"}},
	}
}
