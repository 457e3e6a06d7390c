package domain

// Route is a monitored bus route
type Route struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Coordinates []LatLng `json:"coordinates"`
	Active      bool     `json:"active"`
}

// BusStop is a stop served by one or more routes
type BusStop struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	RouteIDs []string `json:"routeIds"`
}

// Priority of a monitored neighborhood
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// NeighborhoodStatus tells whether the sensors inside a neighborhood report
type NeighborhoodStatus string

const (
	NeighborhoodOnline  NeighborhoodStatus = "online"
	NeighborhoodOffline NeighborhoodStatus = "offline"
)

// Neighborhood is a polygon drawn on the map. Boundaries is an open ring,
// the last vertex connects back to the first.
type Neighborhood struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Boundaries []LatLng           `json:"boundaries"`
	Priority   Priority           `json:"priority"`
	Status     NeighborhoodStatus `json:"status"`
	Active     bool               `json:"active"`
}

// Location is a fixed sensor position with its urban heat bias
type Location struct {
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	Name           string  `json:"name"`
	BaseTempOffset float64 `json:"baseTempOffset"`
	RouteID        string  `json:"routeId"`
	DeviceID       string  `json:"deviceId"`
}

// BusLine is a line drawn under the moving bus markers
type BusLine struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Coordinates []LatLng `json:"coordinates"`
}

// Bus carries an onboard thermometer along a BusLine
type Bus struct {
	ID            string  `json:"id"`
	LineID        string  `json:"lineId"`
	Name          string  `json:"name"`
	Temperature   float64 `json:"temperature"`
	SpeedKmh      float64 `json:"speedKmh"`
	StartPosition float64 `json:"startPosition"` // 0..1 along the line
}

// BusPosition is where a bus is at a given instant
type BusPosition struct {
	BusID       string  `json:"busId"`
	LineID      string  `json:"lineId"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Progress    float64 `json:"progress"`
	Temperature float64 `json:"temperature"`
}
