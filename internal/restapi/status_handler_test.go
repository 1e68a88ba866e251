package restapi

import (
	"net/http"
	"testing"

	"gaia.climateintel.org/internal/earthengine"
	"github.com/stretchr/testify/assert"
)

func TestStatusHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/gaia/status.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)

	assert.Equal(t, true, entry["databaseConnected"])
	assert.Greater(t, entry["observationCount"], float64(0))
	assert.Greater(t, entry["alertCount"], float64(0))
	assert.Equal(t, "test", entry["environment"])

	earthEngine, ok := entry["earthEngine"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, false, earthEngine["connected"])
	assert.Equal(t, earthengine.ModeDemonstration, earthEngine["mode"])
	assert.Equal(t, "credentials not configured", earthEngine["reason"])
}
