package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gateway-discoveries/internal/adapters/http/middleware"
	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/adapters/persistence/repositories"
	"gateway-discoveries/internal/config"
	"gateway-discoveries/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		Port:    "3001",
		JWT: config.JWTConfig{
			Secret:   "test-secret",
			TokenTTL: 24 * time.Hour,
		},
		Redis: config.RedisConfig{RecentTTL: time.Minute},
		Log:   config.LogConfig{Level: "error", Format: "text"},
	}
}

// newTestApp builds the full application against the in-memory store,
// seeded with the demo dataset.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := testConfig()
	log := logrus.New()
	log.SetOutput(io.Discard)

	repos := repositories.New(nil)
	require.NoError(t, config.NewSeeder(repos, log).Run(context.Background()))

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(cfg)})
	Setup(app, repos, nil, nil, cfg, log)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONArray(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded []map[string]interface{}
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "memory", body["store"])
}

func TestLoginWithSeededCredentials(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ranger@kruger.co.za",
		"password": "kruger123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "kruger_staff", user["role"])
	assert.Equal(t, "Kruger Park Ranger", user["name"])
	assert.NotContains(t, user, "password")
}

func TestLoginFailures(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ranger@kruger.co.za"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email and password are required", body["error"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ranger@kruger.co.za",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["error"])

	// Unknown email gets the same answer as a bad password.
	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestAuthStatusCodeAsymmetry(t *testing.T) {
	app := newTestApp(t)

	// Missing token: 401.
	resp, body := doJSON(t, app, http.MethodGet, "/api/animal-sightings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access token required", body["error"])

	// Present but invalid token: 403, not 401.
	resp, body = doJSON(t, app, http.MethodGet, "/api/animal-sightings", "garbage", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token", body["error"])

	// Expired token is a 403 as well.
	expired, err := jwt.Generate("u1", "a@b.c", models.RoleAdmin, "A", "test-secret", -time.Minute)
	require.NoError(t, err)
	resp, body = doJSON(t, app, http.MethodGet, "/api/animal-sightings", expired, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token", body["error"])
}

func TestRoleEnforcement(t *testing.T) {
	app := newTestApp(t)
	ranger := login(t, app, "ranger@kruger.co.za", "kruger123")
	admin := login(t, app, "admin@gatewaydiscoveries.com", "admin123")

	// Staff can read sightings.
	resp, _ := doJSONArray(t, app, http.MethodGet, "/api/animal-sightings", ranger)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A valid staff token on an admin route fails with 403.
	resp, body := doJSON(t, app, http.MethodGet, "/api/analytics", ranger, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Insufficient permissions", body["error"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/analytics", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestVerifyEchoesClaims(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin@gatewaydiscoveries.com", "admin123")

	resp, body := doJSON(t, app, http.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["valid"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "admin@gatewaydiscoveries.com", user["email"])
	assert.Equal(t, models.RoleAdmin, user["role"])
}

func TestProfile(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "ranger@kruger.co.za", "kruger123")

	resp, body := doJSON(t, app, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ranger@kruger.co.za", body["email"])
	assert.Equal(t, "Kruger Park Ranger", body["name"])
	assert.NotContains(t, body, "password_hash")
}

func TestSightingCreateDefaultsAndValidation(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "ranger@kruger.co.za", "kruger123")

	// Missing required fields name the problem.
	resp, body := doJSON(t, app, http.MethodPost, "/api/animal-sightings", token, map[string]string{"species": "Leopard"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Species, location, and gate are required", body["error"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/animal-sightings", token, map[string]string{
		"species":  "Leopard",
		"location": "Lower Sabie River",
		"gate":     "Crocodile Bridge",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.NotEmpty(t, body["id"])
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, float64(90), body["confidence"])
	assert.Equal(t, models.SightingStatusActive, body["status"])
	assert.NotEmpty(t, body["reported_at"])
}

func TestSightingCrudRoundTrip(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "ranger@kruger.co.za", "kruger123")

	resp, created := doJSON(t, app, http.MethodPost, "/api/animal-sightings", token, map[string]interface{}{
		"species":  "Cape Buffalo",
		"location": "Satara",
		"gate":     "Orpen Gate",
		"count":    7,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := created["id"].(string)

	// Get by id is public.
	resp, got := doJSON(t, app, http.MethodGet, "/api/animal-sightings/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Cape Buffalo", got["species"])

	resp, updated := doJSON(t, app, http.MethodPut, "/api/animal-sightings/"+id, token, map[string]interface{}{
		"status": models.SightingStatusHistorical,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.SightingStatusHistorical, updated["status"])

	resp, deleted := doJSON(t, app, http.MethodDelete, "/api/animal-sightings/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Animal sighting deleted successfully", deleted["message"])
	echo := deleted["deleted_sighting"].(map[string]interface{})
	assert.Equal(t, id, echo["id"])

	// Deleting again is a plain 404 and changes nothing.
	resp, body := doJSON(t, app, http.MethodDelete, "/api/animal-sightings/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Animal sighting not found", body["error"])
}

func TestRecentSightingsPublicFeed(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "ranger@kruger.co.za", "kruger123")

	// Push one historical sighting; it must never appear in the feed.
	resp, created := doJSON(t, app, http.MethodPost, "/api/animal-sightings", token, map[string]interface{}{
		"species":  "Leopard",
		"location": "Berg-en-Dal",
		"gate":     "Malelane Gate",
		"status":   models.SightingStatusHistorical,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	historicalID := created["id"].(string)

	resp, feed := doJSONArray(t, app, http.MethodGet, "/api/animal-sightings/recent", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, feed)
	for _, s := range feed {
		assert.NotEqual(t, historicalID, s["id"])
		assert.NotEqual(t, models.SightingStatusHistorical, s["status"])
	}

	// Newest reported first.
	for i := 1; i < len(feed); i++ {
		prev, err := time.Parse(time.RFC3339Nano, feed[i-1]["reported_at"].(string))
		require.NoError(t, err)
		cur, err := time.Parse(time.RFC3339Nano, feed[i]["reported_at"].(string))
		require.NoError(t, err)
		assert.False(t, cur.After(prev))
	}

	// Limit is honored.
	resp, feed = doJSONArray(t, app, http.MethodGet, "/api/animal-sightings/recent?limit=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, feed, 1)
}

func TestSightingStats(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "ranger@kruger.co.za", "kruger123")

	resp, stats := doJSON(t, app, http.MethodGet, "/api/animal-sightings/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Seed data: one recent lion, one active elephant, both Big Five.
	assert.Equal(t, float64(2), stats["total_sightings"])
	assert.Equal(t, float64(1), stats["recent_count"])
	assert.Equal(t, float64(1), stats["active_count"])
	assert.Equal(t, float64(2), stats["big_five_count"])
}

func TestCatalogEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, destinations := doJSONArray(t, app, http.MethodGet, "/api/destinations", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, destinations, 2)

	resp, body := doJSON(t, app, http.MethodGet, "/api/destinations/kruger", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Kruger National Park", body["name"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/destinations/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Destination not found", body["error"])

	resp, accommodations := doJSONArray(t, app, http.MethodGet, "/api/accommodations", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, accommodations, 2)
}

func TestAccommodationCreateIsAdminOnly(t *testing.T) {
	app := newTestApp(t)
	ranger := login(t, app, "ranger@kruger.co.za", "kruger123")
	admin := login(t, app, "admin@gatewaydiscoveries.com", "admin123")

	payload := map[string]interface{}{
		"name":     "Letaba Rest Camp",
		"type":     "camp",
		"location": "Kruger National Park",
	}

	resp, _ := doJSON(t, app, http.MethodPost, "/api/accommodations", ranger, payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, created := doJSON(t, app, http.MethodPost, "/api/accommodations", admin, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Letaba Rest Camp", created["name"])
	assert.Equal(t, float64(4.0), created["rating"])
	assert.Equal(t, "R1,000", created["pricePerNight"])

	resp, body := doJSON(t, app, http.MethodPost, "/api/accommodations", admin, map[string]string{"name": "No Type"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name, type, and location are required", body["error"])
}

func TestFlightFilters(t *testing.T) {
	app := newTestApp(t)

	resp, flights := doJSONArray(t, app, http.MethodGet, "/api/flights", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, flights, 2)

	resp, flights = doJSONArray(t, app, http.MethodGet, "/api/flights?origin=JNB", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, flights, 1)
	assert.Equal(t, "SA345", flights[0]["flightNumber"])

	// "all" disables the filter.
	resp, flights = doJSONArray(t, app, http.MethodGet, "/api/flights?origin=all&destination=all", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, flights, 2)

	resp, flights = doJSONArray(t, app, http.MethodGet, "/api/flights?origin=CPT&destination=MQP", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, flights, 1)
	assert.Equal(t, "FA208", flights[0]["flightNumber"])
}

func TestInteractionsAndAnalytics(t *testing.T) {
	app := newTestApp(t)
	admin := login(t, app, "admin@gatewaydiscoveries.com", "admin123")

	// Type is required.
	resp, body := doJSON(t, app, http.MethodPost, "/api/analytics/interactions", "", map[string]string{"device_id": "kiosk-01"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Interaction type is required", body["error"])

	// A view against a destination bumps its counter.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/analytics/interactions", "", map[string]string{
		"interaction_type": "view",
		"destination_id":   "kruger",
		"device_id":        "kiosk-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, destination := doJSON(t, app, http.MethodGet, "/api/destinations/kruger", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(15421), destination["views"])

	resp, summary := doJSON(t, app, http.MethodGet, "/api/analytics", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), summary["totalInteractions"])
	require.Contains(t, summary, "deviceStatus")
	require.Contains(t, summary, "topDestinations")

	resp, perDest := doJSONArray(t, app, http.MethodGet, "/api/analytics/destinations", admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, perDest, 2)

	resp, dashboard := doJSON(t, app, http.MethodGet, "/api/admin/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), dashboard["totalDestinations"])
	assert.Equal(t, float64(2), dashboard["totalFlights"])
	assert.Equal(t, float64(2), dashboard["totalSightings"])
	assert.Equal(t, float64(1), dashboard["recentSightings"])
}

func TestUnmatchedAPIRoute(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "API endpoint not found", body["error"])
	assert.Equal(t, "/api/does-not-exist", body["path"])
}

func TestRecentAndStatsNotCapturedAsIDs(t *testing.T) {
	app := newTestApp(t)

	// "recent" must not be treated as a sighting id.
	resp, _ := doJSONArray(t, app, http.MethodGet, "/api/animal-sightings/recent", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// "stats" without a token hits the protected route, not the public
	// get-by-id handler.
	resp, body := doJSON(t, app, http.MethodGet, "/api/animal-sightings/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access token required", body["error"])
}
