package service

import (
	"context"
	"fmt"

	"github.com/thermora/backend/internal/aggregate"
	"github.com/thermora/backend/internal/catalog"
	"github.com/thermora/backend/internal/domain"
)

// Routes returns the active routes
func (s *ThermalService) Routes(ctx context.Context) ([]domain.Route, error) {
	routes, err := firstOf(ctx,
		nonEmpty(s.repo.ActiveRoutes),
		always(catalog.ActiveRoutes),
	)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load routes: %w", err)
	}
	return routes, nil
}

// BusStops returns every bus stop
func (s *ThermalService) BusStops(ctx context.Context) ([]domain.BusStop, error) {
	stops, err := firstOf(ctx,
		nonEmpty(s.repo.BusStops),
		always(catalog.BusStops),
	)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load bus stops: %w", err)
	}
	return stops, nil
}

// Neighborhoods returns the active neighborhoods
func (s *ThermalService) Neighborhoods(ctx context.Context) ([]domain.Neighborhood, error) {
	neighborhoods, err := firstOf(ctx,
		nonEmpty(s.repo.ActiveNeighborhoods),
		always(catalog.ActiveNeighborhoods),
	)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load neighborhoods: %w", err)
	}
	return neighborhoods, nil
}

// NeighborhoodHeat buckets the current readings into the active neighborhoods
func (s *ThermalService) NeighborhoodHeat(ctx context.Context) ([]domain.NeighborhoodHeat, error) {
	neighborhoods, err := s.Neighborhoods(ctx)
	if err != nil {
		return nil, err
	}
	readings, err := s.CurrentReadings(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.NeighborhoodHeat(neighborhoods, readings), nil
}

// BusPositions places the demo bus fleet on its lines. Buses start their
// loop at local midnight and move at constant speed.
func (s *ThermalService) BusPositions(ctx context.Context) ([]domain.BusPosition, error) {
	now := s.now()
	return aggregate.BusPositions(catalog.Buses(), catalog.BusLines(), now.Sub(s.midnight(now))), nil
}

func (s *ThermalService) routeIndex(ctx context.Context) (map[string]domain.Route, error) {
	routes, err := s.Routes(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]domain.Route, len(routes))
	for _, r := range routes {
		index[r.ID] = r
	}
	return index, nil
}
