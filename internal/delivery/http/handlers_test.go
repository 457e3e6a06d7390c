package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermora/backend/internal/domain"
	"github.com/thermora/backend/internal/repository/memory"
	"github.com/thermora/backend/internal/service"
)

var testNow = time.Date(2026, 1, 15, 14, 0, 0, 0, time.FixedZone("BRT", -3*60*60))

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Error   bool            `json:"error"`
	Message string          `json:"message"`
}

func newTestApp(t *testing.T, repo domain.Repository, limiter *IPRateLimiter) *fiber.App {
	t.Helper()
	svc := service.NewThermalService(repo,
		service.WithClock(func() time.Time { return testNow }),
		service.WithSeed(7),
		service.WithTimeZone(testNow.Location()),
	)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	SetupRoutes(app, svc, limiter)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env
}

func TestRoutesReturnEnvelope(t *testing.T) {
	app := newTestApp(t, memory.NewRepository(), nil)

	for _, path := range []string{
		"/api/v1/dashboard",
		"/api/v1/readings/current",
		"/api/v1/stats",
		"/api/v1/evolution",
		"/api/v1/hotspots",
		"/api/v1/devices",
		"/api/v1/routes",
		"/api/v1/stops",
		"/api/v1/neighborhoods",
		"/api/v1/neighborhoods/heat",
		"/api/v1/buses",
	} {
		t.Run(path, func(t *testing.T) {
			code, env := get(t, app, path)
			assert.Equal(t, fiber.StatusOK, code)
			assert.True(t, env.Success)
			assert.NotEmpty(t, env.Data)
		})
	}
}

func TestStatsOnEmptyStore(t *testing.T) {
	app := newTestApp(t, memory.NewRepository(), nil)

	_, env := get(t, app, "/api/v1/stats")
	var stats domain.TemperatureStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, service.EmptyStoreStats, stats)
}

func TestListCount(t *testing.T) {
	app := newTestApp(t, memory.NewRepository(), nil)

	_, env := get(t, app, "/api/v1/hotspots")
	require.NotNil(t, env.Count)
	assert.Equal(t, 5, *env.Count)

	var hotspots []domain.Hotspot
	require.NoError(t, json.Unmarshal(env.Data, &hotspots))
	assert.Equal(t, 38.5, hotspots[0].MaxTemp)
}

func TestDeviceDetails(t *testing.T) {
	app := newTestApp(t, memory.NewRepository(), nil)

	code, env := get(t, app, "/api/v1/devices/device-route-1-0")
	assert.Equal(t, fiber.StatusOK, code)

	var detail domain.DeviceDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "device-route-1-0", detail.DeviceID)
	assert.Len(t, detail.Readings, 10)
}

func TestDeviceDetailsNotFound(t *testing.T) {
	app := newTestApp(t, memory.NewRepository(), nil)

	code, env := get(t, app, "/api/v1/devices/does-not-exist")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.True(t, env.Error)
	assert.Contains(t, env.Message, "does-not-exist")
}

type brokenRepo struct {
	*memory.Repository
}

func (brokenRepo) ReadingsBetween(ctx context.Context, from, to time.Time) ([]domain.Reading, error) {
	return nil, errors.New("pq: password authentication failed")
}

func TestStoreFailureDoesNotLeak(t *testing.T) {
	app := newTestApp(t, brokenRepo{memory.NewRepository()}, nil)

	code, env := get(t, app, "/api/v1/readings/current")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.True(t, env.Error)
	assert.Equal(t, "Failed to fetch readings", env.Message)
}

func TestHealth(t *testing.T) {
	repo := memory.NewRepository()
	app := newTestApp(t, repo, nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	repo.FailHealth(errors.New("down"))
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestRateLimit(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2, time.Minute)
	defer limiter.Stop()
	app := newTestApp(t, memory.NewRepository(), limiter)

	for i := 0; i < 2; i++ {
		code, _ := get(t, app, "/api/v1/routes")
		assert.Equal(t, fiber.StatusOK, code)
	}

	code, env := get(t, app, "/api/v1/routes")
	assert.Equal(t, fiber.StatusTooManyRequests, code)
	assert.True(t, env.Error)

	// health is outside the limited group
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
