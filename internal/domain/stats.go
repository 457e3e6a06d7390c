package domain

import "time"

// TemperatureStats is the headline card row of the dashboard
type TemperatureStats struct {
	MaxTemp         float64 `json:"maxTemp"`
	AvgTemp         float64 `json:"avgTemp"`
	ActiveHotspots  int     `json:"activeHotspots"`
	MonitoredRoutes int     `json:"monitoredRoutes"`
	MaxTempChange   float64 `json:"maxTempChange"`
	AvgTempChange   float64 `json:"avgTempChange"`
}

// HourlyPoint is one bucket of an evolution series
type HourlyPoint struct {
	Hour        int     `json:"hour"`
	Temperature float64 `json:"temperature"`
}

// Evolution compares the trailing 24 hours against the long-run average
type Evolution struct {
	Today      []HourlyPoint `json:"today"`
	Historical []HourlyPoint `json:"historical"`
}

// NeighborhoodHeat summarizes current readings inside a neighborhood
type NeighborhoodHeat struct {
	NeighborhoodID string   `json:"neighborhoodId"`
	Name           string   `json:"name"`
	Priority       Priority `json:"priority"`
	ReadingCount   int      `json:"readingCount"`
	AvgTemp        float64  `json:"avgTemp"`
	MaxTemp        float64  `json:"maxTemp"`
}

// DashboardData aggregates the main dashboard views
type DashboardData struct {
	Stats       TemperatureStats `json:"stats"`
	Hotspots    []Hotspot        `json:"hotspots"`
	Evolution   Evolution        `json:"evolution"`
	Readings    []Reading        `json:"readings"`
	GeneratedAt time.Time        `json:"generatedAt"`
}
