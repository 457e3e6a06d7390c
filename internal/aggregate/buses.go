package aggregate

import (
	"math"
	"time"

	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/internal/geo"
)

// BusPositions advances each bus along its line by its speed over elapsed,
// wrapping back to the line start. Buses on unknown or degenerate lines are skipped.
func BusPositions(buses []domain.Bus, lines []domain.BusLine, elapsed time.Duration) []domain.BusPosition {
	byID := make(map[string]domain.BusLine, len(lines))
	for _, l := range lines {
		byID[l.ID] = l
	}

	positions := make([]domain.BusPosition, 0, len(buses))
	for _, b := range buses {
		line, ok := byID[b.LineID]
		if !ok {
			continue
		}
		length := geo.PathLength(line.Coordinates)
		if length == 0 {
			continue
		}

		travelled := b.SpeedKmh / 3.6 * elapsed.Seconds()
		progress := math.Mod(b.StartPosition+travelled/length, 1)
		if progress < 0 {
			progress++
		}
		p := geo.Along(line.Coordinates, progress)

		positions = append(positions, domain.BusPosition{
			BusID:       b.ID,
			LineID:      b.LineID,
			Name:        b.Name,
			Lat:         p.Lat,
			Lng:         p.Lng,
			Progress:    progress,
			Temperature: b.Temperature,
		})
	}
	return positions
}
