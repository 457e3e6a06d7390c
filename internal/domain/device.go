package domain

import "time"

// DeviceState is the recency class of a device
type DeviceState string

const (
	DeviceOnline  DeviceState = "online"
	DeviceLate    DeviceState = "late"
	DeviceOffline DeviceState = "offline"
)

// DeviceStatus is derived from the most recent reading of a device
type DeviceStatus struct {
	DeviceID           string      `json:"deviceId"`
	RouteName          string      `json:"routeName"`
	Status             DeviceState `json:"status"`
	CurrentTemp        float64     `json:"currentTemp"`
	LastReading        time.Time   `json:"lastReading"`
	TimeOnRouteMinutes int         `json:"timeOnRoute"`
}

// DeviceDetail extends DeviceStatus with position, history and route
type DeviceDetail struct {
	DeviceStatus
	Lat      float64   `json:"lat"`
	Lng      float64   `json:"lng"`
	Readings []Reading `json:"readings"`
	Route    *Route    `json:"route,omitempty"`
}
