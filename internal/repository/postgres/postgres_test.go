package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermora/backend/internal/domain"
)

// Runs against a real database only when TEST_DATABASE_URL is set
func newTestRepository(t *testing.T) *PostgresRepository {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := NewPostgresRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	return repo
}

func TestReadingsRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	device := "test-" + uuid.NewString()
	base := time.Now().UTC().Truncate(time.Millisecond).Add(-time.Hour)
	require.NoError(t, repo.SaveReadings(ctx, []domain.Reading{
		{Timestamp: base.Add(time.Minute), Lat: -23.55, Lng: -46.63, Temperature: 33.5, DeviceID: device, RouteID: "route-1"},
		{Timestamp: base, Lat: -23.55, Lng: -46.63, Temperature: 31, DeviceID: device},
	}))

	got, err := repo.ReadingsByDevice(ctx, device, base)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Timestamp.Equal(base))
	assert.Empty(t, got[0].RouteID)
	assert.Equal(t, "route-1", got[1].RouteID)

	// end bound is exclusive
	between, err := repo.ReadingsBetween(ctx, base, base.Add(time.Minute))
	require.NoError(t, err)
	var mine int
	for _, r := range between {
		if r.DeviceID == device {
			mine++
		}
	}
	assert.Equal(t, 1, mine)

	open, err := repo.ReadingsBetween(ctx, base.Add(time.Minute), time.Time{})
	require.NoError(t, err)
	mine = 0
	for _, r := range open {
		if r.DeviceID == device {
			mine++
		}
	}
	assert.Equal(t, 1, mine)
}

func TestTopologyUpsert(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id := "test-" + uuid.NewString()
	route := domain.Route{ID: id, Name: "Teste", Coordinates: []domain.LatLng{{Lat: -23.55, Lng: -46.63}}, Active: true}
	require.NoError(t, repo.SaveRoute(ctx, route))
	route.Name = "Teste 2"
	require.NoError(t, repo.SaveRoute(ctx, route))

	routes, err := repo.ActiveRoutes(ctx)
	require.NoError(t, err)
	var found *domain.Route
	for i := range routes {
		if routes[i].ID == id {
			found = &routes[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Teste 2", found.Name)
	assert.Equal(t, route.Coordinates, found.Coordinates)

	assert.NoError(t, repo.Health(ctx))
}
