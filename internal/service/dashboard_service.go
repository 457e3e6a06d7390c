package service

import (
	"context"
	"log"
	"sync"

	"github.com/thermora/backend/internal/domain"
)

// Dashboard fetches the main dashboard views concurrently using goroutines.
// The first failure is returned; partial data is discarded.
func (s *ThermalService) Dashboard(ctx context.Context) (domain.DashboardData, error) {
	var (
		data     domain.DashboardData
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fetch := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				log.Printf("Dashboard %s fetch error: %v", name, err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	fetch("stats", func() error {
		stats, err := s.TemperatureStats(ctx)
		mu.Lock()
		data.Stats = stats
		mu.Unlock()
		return err
	})
	fetch("hotspots", func() error {
		hotspots, err := s.Hotspots(ctx)
		mu.Lock()
		data.Hotspots = hotspots
		mu.Unlock()
		return err
	})
	fetch("evolution", func() error {
		evolution, err := s.Evolution(ctx)
		mu.Lock()
		data.Evolution = evolution
		mu.Unlock()
		return err
	})
	fetch("readings", func() error {
		readings, err := s.CurrentReadings(ctx)
		mu.Lock()
		data.Readings = readings
		mu.Unlock()
		return err
	})

	wg.Wait()

	if firstErr != nil {
		return domain.DashboardData{}, firstErr
	}
	data.GeneratedAt = s.now()
	return data, nil
}
