package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/gaia/trend/temperature.json", nil)
	params := httprouter.Params{{Key: "type", Value: "temperature.json"}}
	r = r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))

	assert.Equal(t, "temperature", ExtractIDFromParams(r, "type"))
}

func TestExtractIDFromParams_CatchAll(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/gaia/dataset/MODIS/006/MOD11A1.json", nil)
	params := httprouter.Params{{Key: "id", Value: "/MODIS/006/MOD11A1.json"}}
	r = r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))

	assert.Equal(t, "MODIS/006/MOD11A1", ExtractIDFromParams(r, "id"))
}

func TestExtractIDFromParams_NoExtension(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/gaia/trend/co2", nil)
	params := httprouter.Params{{Key: "type", Value: "co2"}}
	r = r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))

	assert.Equal(t, "co2", ExtractIDFromParams(r, "type"))
}
