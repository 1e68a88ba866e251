package restapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportObservationHandler(t *testing.T) {
	api := createTestApi(t)

	body := map[string]interface{}{
		"dataType":  "temperature",
		"value":     1.42,
		"timestamp": "2025-06-01T12:00:00Z",
		"latitude":  47.6,
		"longitude": -122.3,
		"comment":   "rooftop station reading",
	}
	resp, model := postJSON(t, api, "/api/gaia/report-observation.json?key=TEST", body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, true, entry["accepted"])
	assert.Equal(t, "temperature", entry["dataType"])
	assert.Greater(t, entry["id"], float64(0))
}

func TestReportObservationHandlerMissingValue(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	request := map[string]interface{}{"dataType": "temperature"}
	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/report-observation.json?key=TEST", "", request)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body.FieldErrors, "value")
}

func TestReportObservationHandlerBadFields(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	request := map[string]interface{}{
		"dataType":  "humidity",
		"value":     10.0,
		"timestamp": "not-a-time",
		"latitude":  95.0,
	}
	resp, raw := doRequest(t, server, http.MethodPost, "/api/gaia/report-observation.json?key=TEST", "", request)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body.FieldErrors, "dataType")
	assert.Contains(t, body.FieldErrors, "timestamp")
	assert.Contains(t, body.FieldErrors, "latitude")
}
