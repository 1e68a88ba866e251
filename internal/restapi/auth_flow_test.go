package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gaia.climateintel.org/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loginAs obtains a bearer token for one of the seeded accounts.
func loginAs(t *testing.T, server *httptest.Server, username, password string) string {
	t.Helper()

	body := map[string]string{"username": username, "password": password}
	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/auth/token.json?key=TEST", "", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var model models.ResponseModel
	require.NoError(t, json.Unmarshal(raw, &model))
	entry := entryFromModel(t, model)

	token, ok := entry["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestAuthTokenHandler(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	body := map[string]string{"username": "admin", "password": "admin123"}
	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/auth/token.json?key=TEST", "", body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var model models.ResponseModel
	require.NoError(t, json.Unmarshal(raw, &model))
	entry := entryFromModel(t, model)
	assert.NotEmpty(t, entry["token"])
	assert.Equal(t, "admin", entry["username"])
	assert.Equal(t, true, entry["admin"])
	assert.NotEmpty(t, entry["expiresAt"])
}

func TestAuthTokenHandlerWrongPassword(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	body := map[string]string{"username": "admin", "password": "wrong"}
	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/auth/token.json?key=TEST", "", body)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), "permission denied")
}

func TestAuthTokenHandlerMissingFields(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/auth/token.json?key=TEST", "", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body.FieldErrors, "username")
	assert.Contains(t, body.FieldErrors, "password")
}

func TestAuthRegisterHandler(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	body := map[string]string{
		"username": "newuser",
		"email":    "newuser@example.org",
		"password": "long-enough-password",
	}
	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/auth/register.json?key=TEST", "", body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var model models.ResponseModel
	require.NoError(t, json.Unmarshal(raw, &model))
	entry := entryFromModel(t, model)
	assert.NotEmpty(t, entry["token"])
	assert.Equal(t, "newuser", entry["username"])
	assert.Equal(t, false, entry["admin"])

	// The new account can log in.
	loginAs(t, server, "newuser", "long-enough-password")
}

func TestAuthRegisterHandlerTakenUsername(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	body := map[string]string{
		"username": "demo",
		"email":    "demo@example.org",
		"password": "long-enough-password",
	}
	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/auth/register.json?key=TEST", "", body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "already taken")
}

func TestAuthRegisterHandlerShortPassword(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	body := map[string]string{"username": "short", "email": "s@example.org", "password": "short"}
	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/auth/register.json?key=TEST", "", body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(raw, &errBody))
	assert.Contains(t, errBody.FieldErrors, "password")
}

func TestPreferencesRequireToken(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	resp, _ := doRequest(t, server, http.MethodGet, "/api/gaia/preferences.json?key=TEST", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, server, http.MethodGet, "/api/gaia/preferences.json?key=TEST", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPreferencesRoundTrip(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)
	token := loginAs(t, server, "demo", "demo123")

	resp, raw := doRequest(t, server, http.MethodGet, "/api/gaia/preferences.json?key=TEST", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var model models.ResponseModel
	require.NoError(t, json.Unmarshal(raw, &model))
	entry := entryFromModel(t, model)
	assert.Equal(t, "light", entry["theme"])
	assert.Equal(t, "celsius", entry["temperatureUnit"])
	assert.Equal(t, true, entry["notificationsEnabled"])

	update := map[string]interface{}{
		"theme":           "dark",
		"temperatureUnit": "fahrenheit",
		"advancedMode":    true,
	}
	resp, raw = doRequest(t, server, http.MethodPut, "/api/gaia/preferences.json?key=TEST", token, update)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, json.Unmarshal(raw, &model))
	entry = entryFromModel(t, model)
	assert.Equal(t, "dark", entry["theme"])
	assert.Equal(t, "fahrenheit", entry["temperatureUnit"])
	assert.Equal(t, true, entry["advancedMode"])

	// The update persists for the next read.
	resp, raw = doRequest(t, server, http.MethodGet, "/api/gaia/preferences.json?key=TEST", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &model))
	entry = entryFromModel(t, model)
	assert.Equal(t, "dark", entry["theme"])
}

func TestPreferencesRejectsUnknownTheme(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)
	token := loginAs(t, server, "demo", "demo123")

	update := map[string]interface{}{"theme": "sepia"}
	resp, raw := doRequest(t, server, http.MethodPut, "/api/gaia/preferences.json?key=TEST", token, update)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body.FieldErrors, "theme")
}

func TestSavedLocationsRoundTrip(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)
	token := loginAs(t, server, "demo", "demo123")

	create := map[string]interface{}{
		"name":        "Home",
		"latitude":    47.6,
		"longitude":   -122.3,
		"description": "Seattle",
	}
	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/locations.json?key=TEST", token, create)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var model models.ResponseModel
	require.NoError(t, json.Unmarshal(raw, &model))
	created := entryFromModel(t, model)
	assert.Equal(t, "Home", created["name"])
	locationID := created["id"].(float64)
	assert.Greater(t, locationID, float64(0))

	resp, raw = doRequest(t, server, http.MethodGet, "/api/gaia/locations.json?key=TEST", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &model))
	list := listFromModel(t, model)
	require.Len(t, list, 1)

	location, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Home", location["name"])
	assert.Equal(t, "Seattle", location["description"])

	deletePath := fmt.Sprintf("/api/gaia/location/%d.json?key=TEST", int64(locationID))
	resp, raw = doRequest(t, server, http.MethodDelete, deletePath, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &model))
	deleted := entryFromModel(t, model)
	assert.Equal(t, true, deleted["deleted"])

	resp, raw = doRequest(t, server, http.MethodGet, "/api/gaia/locations.json?key=TEST", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &model))
	assert.Empty(t, listFromModel(t, model))
}

func TestDeleteLocationNotFound(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)
	token := loginAs(t, server, "demo", "demo123")

	resp, _ := doRequest(t, server, http.MethodDelete, "/api/gaia/location/999.json?key=TEST", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateLocationValidation(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)
	token := loginAs(t, server, "demo", "demo123")

	create := map[string]interface{}{"name": "Nowhere", "latitude": 200.0, "longitude": 10.0}
	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/locations.json?key=TEST", token, create)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body.FieldErrors, "latitude")
}
