package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gaia.climateintel.org/internal/app"
	"gaia.climateintel.org/internal/appconf"
	"gaia.climateintel.org/internal/auth"
	"gaia.climateintel.org/internal/climate"
	"gaia.climateintel.org/internal/earthengine"
	"gaia.climateintel.org/internal/heatmap"
	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/news"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

// createTestApi creates a new RestAPI instance backed by a seeded
// in-memory climate database for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	manager, err := climate.InitClimateManager(climate.Config{
		DataPath: ":memory:",
		Env:      appconf.Test,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	earthEngine := earthengine.NewService("", "", "", nil)

	application := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		ClimateManager: manager,
		EarthEngine:    earthEngine,
		Heatmap:        heatmap.NewGenerator(manager.ClimateDB.Queries, earthEngine),
		Auth:           auth.NewService(manager.ClimateDB.Queries, "test-secret", auth.DefaultTokenTTL),
		News:           news.NewService(),
	}

	return &RestAPI{Application: application}
}

func testServer(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()

	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := testServer(t, api)
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// postJSON sends a JSON body to the endpoint and decodes the envelope.
func postJSON(t *testing.T, api *RestAPI, endpoint string, body interface{}) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := testServer(t, api)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+endpoint, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// doRequest issues an arbitrary request with optional bearer token and
// returns the raw body.
func doRequest(t *testing.T, server *httptest.Server, method, endpoint, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if raw, ok := body.([]byte); ok {
		reader = bytes.NewReader(raw)
	} else if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, server.URL+endpoint, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// entryFromModel digs the entry map out of a response envelope.
func entryFromModel(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "response entry should be a map")
	return entry
}

// listFromModel digs the list out of a response envelope.
func listFromModel(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "response list should be a slice")
	return list
}
