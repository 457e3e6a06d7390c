package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/thermora/backend/internal/aggregate"
	"github.com/thermora/backend/internal/catalog"
	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/internal/synth"
)

// Devices returns one status per device that reported since local midnight.
// Without persisted readings the fixture fleet is synthesized and every
// third device is shown offline.
func (s *ThermalService) Devices(ctx context.Context) ([]domain.DeviceStatus, error) {
	now := s.now()

	routes, err := s.routeIndex(ctx)
	if err != nil {
		return nil, err
	}
	names := routeNames(routes)

	persisted, err := s.readingsSince(s.midnight(now))(ctx)
	if err != nil {
		return nil, err
	}
	if len(persisted) > 0 {
		return aggregate.DeviceStatuses(now, persisted, names), nil
	}

	statuses := aggregate.DeviceStatuses(now, s.synthesizer().Readings(now), names)
	return aggregate.ForceDemoOffline(now, statuses), nil
}

// DeviceDetails returns the status, position, today's readings and route of
// one device. It returns nil without error for a device Devices would not list:
// once anything reported today only persisted devices are known.
func (s *ThermalService) DeviceDetails(ctx context.Context, deviceID string) (*domain.DeviceDetail, error) {
	now := s.now()
	midnight := s.midnight(now)

	routes, err := s.routeIndex(ctx)
	if err != nil {
		return nil, err
	}

	today, err := s.readingsSince(midnight)(ctx)
	if err != nil {
		return nil, err
	}
	synthetic := len(today) == 0

	var readings []domain.Reading
	if synthetic {
		l, ok := s.location(deviceID)
		if !ok {
			return nil, nil
		}
		readings = synth.New(s.newRand(), s.loc, []domain.Location{l}).Readings(now)
	} else {
		readings, err = s.repo.ReadingsByDevice(ctx, deviceID, midnight)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load device readings: %w", err)
		}
	}

	statuses := aggregate.DeviceStatuses(now, readings, routeNames(routes))
	if len(statuses) == 0 {
		return nil, nil
	}
	status := statuses[0]
	if synthetic && s.demoOffline(deviceID) {
		status = aggregate.MarkDemoOffline(now, status)
	}

	latest, _ := aggregate.LatestReading(readings)
	detail := &domain.DeviceDetail{
		DeviceStatus: status,
		Lat:          latest.Lat,
		Lng:          latest.Lng,
		Readings:     readings,
	}
	if route, ok := routes[latest.RouteID]; ok {
		detail.Route = &route
	} else if route, ok := catalog.RouteByID(latest.RouteID); ok {
		detail.Route = &route
	}
	return detail, nil
}

func (s *ThermalService) location(deviceID string) (domain.Location, bool) {
	for _, l := range s.locations {
		if l.DeviceID == deviceID {
			return l, true
		}
	}
	return domain.Location{}, false
}

// demoOffline tells whether Devices forces deviceID offline on the synthetic path
func (s *ThermalService) demoOffline(deviceID string) bool {
	ids := make([]string, 0, len(s.locations))
	for _, l := range s.locations {
		ids = append(ids, l.DeviceID)
	}
	sort.Strings(ids)
	i := sort.SearchStrings(ids, deviceID)
	return i < len(ids) && ids[i] == deviceID && i%3 == 2
}

func routeNames(routes map[string]domain.Route) map[string]string {
	names := make(map[string]string, len(routes))
	for id, r := range routes {
		names[id] = r.Name
	}
	for _, r := range catalog.Routes() {
		if _, ok := names[r.ID]; !ok {
			names[r.ID] = r.Name
		}
	}
	return names
}
