package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationProfileHandler(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/gaia/location-profile.json?key=TEST&lat=-3.1&lon=-60.0")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, -3.1, entry["latitude"])
	assert.Equal(t, -60.0, entry["longitude"])

	risks, ok := entry["risks"].(map[string]interface{})
	require.True(t, ok)
	// Near-equatorial locations carry the highest coastal and
	// biodiversity risk bands.
	assert.Equal(t, float64(8), risks["seaLevel"])
	assert.Equal(t, float64(9), risks["biodiversity"])

	history, ok := entry["history"].([]interface{})
	require.True(t, ok)
	assert.Len(t, history, 51)
}

func TestLocationProfileHandlerMissingParams(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	resp, _ := doRequest(t, server, http.MethodGet, "/api/gaia/location-profile.json?key=TEST", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLocationProfileHandlerOutOfRange(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	resp, _ := doRequest(t, server, http.MethodGet, "/api/gaia/location-profile.json?key=TEST&lat=95&lon=0", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
