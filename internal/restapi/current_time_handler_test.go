package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentTimeHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/gaia/current-time.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, entry["readableTime"])
	assert.NotZero(t, entry["time"])
}

func TestCurrentTimeHandlerRequiresAPIKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/gaia/current-time.json")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
	assert.Equal(t, 1, model.Version)
}

func TestCurrentTimeHandlerRejectsUnknownAPIKey(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/gaia/current-time.json?key=WRONG")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
