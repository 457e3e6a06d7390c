package synth

import (
	"math"

	"github.com/thermora/backend/internal/domain"
)

// HistoricalBase is the long-run average temperature of the city
const HistoricalBase = 31.0

// Historical returns the long-run hourly average with up to ±1 °C of noise per hour
func Historical(rng Rand) []domain.HourlyPoint {
	points := make([]domain.HourlyPoint, 24)
	for hour := range points {
		temp := HistoricalBase + 4*math.Sin(float64(hour-6)/12*math.Pi) + (rng.Float64()-0.5)*2
		points[hour] = domain.HourlyPoint{Hour: hour, Temperature: temp}
	}
	return points
}
