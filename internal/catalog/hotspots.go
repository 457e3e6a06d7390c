package catalog

import (
	"time"

	"github.com/thermora/backend/internal/domain"
)

// Hotspots returns the curated demo hotspots for date, already ordered by
// MaxTemp descending. StartTime is backdated from now by the hotspot duration.
func Hotspots(date string, now time.Time) []domain.Hotspot {
	spot := func(name string, lat, lng, maxTemp float64, minutes, population int, risk domain.RiskLevel) domain.Hotspot {
		return domain.Hotspot{
			Name:            name,
			Lat:             lat,
			Lng:             lng,
			MaxTemp:         maxTemp,
			DurationMinutes: minutes,
			Population:      population,
			RiskLevel:       risk,
			Date:            date,
			StartTime:       now.Add(-time.Duration(minutes) * time.Minute),
		}
	}

	return []domain.Hotspot{
		spot("Terminal Central", -23.5505, -46.6333, 38.5, 45, 2500, domain.RiskEmergency),
		spot("Av. Principal - Zona Norte", -23.5455, -46.6383, 37.2, 32, 1800, domain.RiskDanger),
		spot("Praça do Mercado", -23.5505, -46.6333, 36.1, 28, 1200, domain.RiskDanger),
		spot("Rua Comercial - Centro", -23.5505, -46.6333, 35.5, 18, 800, domain.RiskCaution),
		spot("Jardim das Flores", -23.5545, -46.6293, 34.8, 15, 600, domain.RiskCaution),
	}
}
