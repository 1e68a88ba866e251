package restapi

import (
	"net/http"
	"testing"

	"gaia.climateintel.org/internal/earthengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatmapHandlerTemperature(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/gaia/heatmap/temperature.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, "temperature", entry["kind"])
	assert.Equal(t, earthengine.ModeDemonstration, entry["mode"])
	// Without Earth Engine the layer falls back to the database, and the
	// seeded observations carry no coordinates.
	assert.NotContains(t, entry, "layer")
	assert.Equal(t, "no located temperature observations in window", entry["note"])

	gradient, ok := entry["gradient"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "red", gradient["1.0"])
}

func TestHeatmapHandlerPrecipitationRequiresEarthEngine(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/gaia/heatmap/precipitation.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, "precipitation", entry["kind"])
	assert.Equal(t, "precipitation heatmap requires Earth Engine access", entry["note"])
}

func TestHeatmapHandlerEvents(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/gaia/heatmap/events.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, "FeatureCollection", entry["type"])

	features, ok := entry["features"].([]interface{})
	require.True(t, ok)
	assert.Len(t, features, 5)
}

func TestHeatmapHandlerStats(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/gaia/heatmap/stats.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, "Global", entry["coverage"])
	assert.Equal(t, float64(5), entry["activeEvents"])
}

func TestHeatmapHandlerUnknownLayer(t *testing.T) {
	api := createTestApi(t)

	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/gaia/heatmap/ozone.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMapHandler(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/gaia/map.json?key=TEST&lat=47.6&lon=-122.3&zoom=6")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, 47.6, entry["centerLatitude"])
	assert.Equal(t, -122.3, entry["centerLongitude"])
	assert.Equal(t, float64(6), entry["zoom"])

	layers, ok := entry["layers"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, layers)
	assert.NotNil(t, entry["events"])
}

func TestMapHandlerDefaults(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/gaia/map.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, defaultMapLatitude, entry["centerLatitude"])
	assert.Equal(t, float64(defaultMapZoom), entry["zoom"])
}
