package aggregate

import (
	"sort"
	"time"

	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/pkg/utils"
)

// Recency thresholds of the device state machine
const (
	OnlineWithin = 2 * time.Minute
	LateWithin   = 10 * time.Minute
)

// DemoOfflineAge is how far back a device forced offline in demo mode last reported
const DemoOfflineAge = 15 * time.Minute

// Classify maps the age of the last reading to a device state
func Classify(age time.Duration) domain.DeviceState {
	switch {
	case age <= OnlineWithin:
		return domain.DeviceOnline
	case age <= LateWithin:
		return domain.DeviceLate
	default:
		return domain.DeviceOffline
	}
}

type deviceSpan struct {
	first  time.Time
	latest domain.Reading
}

// DeviceStatuses rolls readings up into one status per device, sorted by device id.
// routeNames maps route ids to display names; unknown routes fall back to the id.
func DeviceStatuses(now time.Time, readings []domain.Reading, routeNames map[string]string) []domain.DeviceStatus {
	spans := make(map[string]*deviceSpan)
	for _, r := range readings {
		span, ok := spans[r.DeviceID]
		if !ok {
			spans[r.DeviceID] = &deviceSpan{first: r.Timestamp, latest: r}
			continue
		}
		if r.Timestamp.Before(span.first) {
			span.first = r.Timestamp
		}
		if r.Timestamp.After(span.latest.Timestamp) {
			span.latest = r
		}
	}

	statuses := make([]domain.DeviceStatus, 0, len(spans))
	for id, span := range spans {
		routeName := routeNames[span.latest.RouteID]
		if routeName == "" {
			routeName = span.latest.RouteID
		}
		statuses = append(statuses, domain.DeviceStatus{
			DeviceID:           id,
			RouteName:          routeName,
			Status:             Classify(now.Sub(span.latest.Timestamp)),
			CurrentTemp:        utils.Round1(span.latest.Temperature),
			LastReading:        span.latest.Timestamp,
			TimeOnRouteMinutes: int(now.Sub(span.first) / time.Minute),
		})
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].DeviceID < statuses[j].DeviceID
	})
	return statuses
}

// ForceDemoOffline marks every third device (index % 3 == 2) offline with a
// backdated last reading so demo data always shows a mix of states.
func ForceDemoOffline(now time.Time, statuses []domain.DeviceStatus) []domain.DeviceStatus {
	for i := range statuses {
		if i%3 == 2 {
			statuses[i] = MarkDemoOffline(now, statuses[i])
		}
	}
	return statuses
}

// MarkDemoOffline returns st as offline since DemoOfflineAge ago
func MarkDemoOffline(now time.Time, st domain.DeviceStatus) domain.DeviceStatus {
	st.Status = domain.DeviceOffline
	st.LastReading = now.Add(-DemoOfflineAge)
	return st
}

// LatestReading returns the freshest reading, ok false when readings is empty
func LatestReading(readings []domain.Reading) (domain.Reading, bool) {
	if len(readings) == 0 {
		return domain.Reading{}, false
	}
	latest := readings[0]
	for _, r := range readings[1:] {
		if r.Timestamp.After(latest.Timestamp) {
			latest = r
		}
	}
	return latest, true
}
