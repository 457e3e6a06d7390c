package domain

import "time"

// RiskLevel classifies the population risk at a hotspot
type RiskLevel string

const (
	RiskEmergency RiskLevel = "Emergency"
	RiskDanger    RiskLevel = "Danger"
	RiskCaution   RiskLevel = "Caution"
)

// Hotspot is a location flagged as critically hot on a given date
type Hotspot struct {
	Name            string    `json:"name"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	MaxTemp         float64   `json:"maxTemp"`
	DurationMinutes int       `json:"duration"`
	Population      int       `json:"population"`
	RiskLevel       RiskLevel `json:"riskLevel"`
	Date            string    `json:"date"` // YYYY-MM-DD
	StartTime       time.Time `json:"startTime"`
}

// DateLayout is the format of Hotspot.Date
const DateLayout = "2006-01-02"
