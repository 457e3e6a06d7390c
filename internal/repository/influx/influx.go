// Package influx keeps thermal readings in an InfluxDB 2.x bucket.
// It only implements domain.ReadingStore; hotspots and topology stay in
// the relational store it is combined with.
package influx

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/thermora/backend/internal/domain"
)

const measurement = "thermal_reading"

// ReadingRepository writes and queries readings through the InfluxDB client
type ReadingRepository struct {
	client influxdb2.Client
	org    string
	bucket string
}

// NewReadingRepository creates a client for the given server
func NewReadingRepository(url, token, org, bucket string) *ReadingRepository {
	return &ReadingRepository{
		client: influxdb2.NewClient(url, token),
		org:    org,
		bucket: bucket,
	}
}

// SaveReadings writes one point per reading
func (r *ReadingRepository) SaveReadings(ctx context.Context, readings []domain.Reading) error {
	if len(readings) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(readings))
	for _, rd := range readings {
		points = append(points, toPoint(rd))
	}

	writeAPI := r.client.WriteAPIBlocking(r.org, r.bucket)
	if err := writeAPI.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("influx: failed to write readings: %w", err)
	}
	return nil
}

// ReadingsBetween queries readings with from <= timestamp < to
func (r *ReadingRepository) ReadingsBetween(ctx context.Context, from, to time.Time) ([]domain.Reading, error) {
	return r.query(ctx, readingsQuery(r.bucket, from, to, ""))
}

// ReadingsByDevice queries a device's readings since the given instant
func (r *ReadingRepository) ReadingsByDevice(ctx context.Context, deviceID string, since time.Time) ([]domain.Reading, error) {
	return r.query(ctx, readingsQuery(r.bucket, since, time.Time{}, deviceID))
}

func (r *ReadingRepository) query(ctx context.Context, flux string) ([]domain.Reading, error) {
	result, err := r.client.QueryAPI(r.org).Query(ctx, flux)
	if err != nil {
		log.Printf("influx: query failed: %v\nQuery: %s", err, flux)
		return nil, fmt.Errorf("influx: failed to query readings: %w", err)
	}
	defer result.Close()

	var readings []domain.Reading
	for result.Next() {
		rec := result.Record()
		rd, ok := recordToReading(rec.Time(), rec.Values())
		if !ok {
			continue
		}
		readings = append(readings, rd)
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("influx: failed to read query result: %w", result.Err())
	}
	return readings, nil
}

// Health checks the server health endpoint
func (r *ReadingRepository) Health(ctx context.Context) error {
	health, err := r.client.Health(ctx)
	if err != nil {
		return fmt.Errorf("influx: health check failed: %w", err)
	}
	if health.Status != "pass" {
		return fmt.Errorf("influx: server reports status %s", health.Status)
	}
	return nil
}

// Close releases the client
func (r *ReadingRepository) Close() {
	r.client.Close()
}

func toPoint(rd domain.Reading) *write.Point {
	tags := map[string]string{"device_id": rd.DeviceID}
	if rd.RouteID != "" {
		tags["route_id"] = rd.RouteID
	}
	return influxdb2.NewPoint(measurement, tags, map[string]interface{}{
		"temperature": rd.Temperature,
		"lat":         rd.Lat,
		"lng":         rd.Lng,
	}, rd.Timestamp)
}

// readingsQuery builds the Flux query. A zero stop means "until now";
// range stop is exclusive which gives the half-open window.
func readingsQuery(bucket string, start, stop time.Time, deviceID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "from(bucket: %q)\n", bucket)
	if stop.IsZero() {
		fmt.Fprintf(&b, "  |> range(start: %s)\n", start.UTC().Format(time.RFC3339Nano))
	} else {
		fmt.Fprintf(&b, "  |> range(start: %s, stop: %s)\n", start.UTC().Format(time.RFC3339Nano), stop.UTC().Format(time.RFC3339Nano))
	}
	fmt.Fprintf(&b, "  |> filter(fn: (r) => r[\"_measurement\"] == %q)\n", measurement)
	if deviceID != "" {
		fmt.Fprintf(&b, "  |> filter(fn: (r) => r[\"device_id\"] == %q)\n", deviceID)
	}
	b.WriteString("  |> pivot(rowKey: [\"_time\"], columnKey: [\"_field\"], valueColumn: \"_value\")\n")
	b.WriteString("  |> group()\n")
	b.WriteString("  |> sort(columns: [\"_time\"])\n")
	return b.String()
}

// recordToReading maps a pivoted row back to a reading
func recordToReading(ts time.Time, values map[string]interface{}) (domain.Reading, bool) {
	temp, ok := values["temperature"].(float64)
	if !ok {
		return domain.Reading{}, false
	}
	rd := domain.Reading{Timestamp: ts.UTC(), Temperature: temp}
	rd.Lat, _ = values["lat"].(float64)
	rd.Lng, _ = values["lng"].(float64)
	rd.DeviceID, _ = values["device_id"].(string)
	rd.RouteID, _ = values["route_id"].(string)
	return rd, true
}

var _ domain.ReadingStore = (*ReadingRepository)(nil)
