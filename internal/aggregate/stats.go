// Package aggregate derives dashboard views from raw readings.
// Functions here are pure: callers decide where readings come from.
package aggregate

import (
	"sort"
	"time"

	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/pkg/utils"
)

// Summary is the max and mean temperature of a set of readings
type Summary struct {
	Max   float64
	Avg   float64
	Count int
}

// Summarize computes max and mean temperature. ok is false for an empty set.
func Summarize(readings []domain.Reading) (Summary, bool) {
	if len(readings) == 0 {
		return Summary{}, false
	}

	max := readings[0].Temperature
	var sum float64
	for _, r := range readings {
		if r.Temperature > max {
			max = r.Temperature
		}
		sum += r.Temperature
	}
	return Summary{Max: max, Avg: sum / float64(len(readings)), Count: len(readings)}, true
}

// Shift returns s with both max and mean moved by the given amounts
func (s Summary) Shift(maxDelta, avgDelta float64) Summary {
	s.Max += maxDelta
	s.Avg += avgDelta
	return s
}

// Stats builds the headline statistics, comparing current against the prior day
func Stats(current, yesterday Summary, activeHotspots, monitoredRoutes int) domain.TemperatureStats {
	return domain.TemperatureStats{
		MaxTemp:         utils.Round1(current.Max),
		AvgTemp:         utils.Round1(current.Avg),
		ActiveHotspots:  activeHotspots,
		MonitoredRoutes: monitoredRoutes,
		MaxTempChange:   utils.Round1(current.Max - yesterday.Max),
		AvgTempChange:   utils.Round1(current.Avg - yesterday.Avg),
	}
}

// HourlyBucket is one hour of the trailing day
type HourlyBucket struct {
	Hour     int
	Start    time.Time
	End      time.Time
	Readings []domain.Reading
}

// HourlyBuckets partitions the 24 hours before now into one-hour buckets.
// Bucket i covers [now-(24-i)h, now-(23-i)h); readings outside are dropped.
func HourlyBuckets(now time.Time, readings []domain.Reading) []HourlyBucket {
	buckets := make([]HourlyBucket, 24)
	origin := now.Add(-24 * time.Hour)
	for i := range buckets {
		start := origin.Add(time.Duration(i) * time.Hour)
		buckets[i] = HourlyBucket{Hour: i, Start: start, End: start.Add(time.Hour)}
	}

	for _, r := range readings {
		if r.Timestamp.Before(origin) || !r.Timestamp.Before(now) {
			continue
		}
		i := int(r.Timestamp.Sub(origin) / time.Hour)
		buckets[i].Readings = append(buckets[i].Readings, r)
	}
	return buckets
}

// RankHotspots orders hotspots by MaxTemp, hottest first
func RankHotspots(hotspots []domain.Hotspot) []domain.Hotspot {
	sort.SliceStable(hotspots, func(i, j int) bool {
		return hotspots[i].MaxTemp > hotspots[j].MaxTemp
	})
	return hotspots
}
