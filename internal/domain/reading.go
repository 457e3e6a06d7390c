package domain

import "time"

// LatLng is a WGS84 coordinate pair
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Reading is one timestamped temperature sample taken by a device
type Reading struct {
	Timestamp   time.Time `json:"timestamp"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Temperature float64   `json:"temperature"`
	DeviceID    string    `json:"deviceId"`
	RouteID     string    `json:"routeId,omitempty"`
}

// Temperature bounds applied to synthesized readings
const (
	MinTemperature = 25.0
	MaxTemperature = 42.0
)

// SaoPauloCenter is the reference point used for urban heat offsets (Praça da Sé)
var SaoPauloCenter = LatLng{Lat: -23.5505, Lng: -46.6333}
