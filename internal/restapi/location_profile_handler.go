package restapi

import (
	"net/http"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/geoprofile"
	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

func (api *RestAPI) locationProfileHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var fieldErrors map[string][]string
	lat, fieldErrors := utils.ParseFloatParam(params, "lat", fieldErrors)
	lon, fieldErrors := utils.ParseFloatParam(params, "lon", fieldErrors)
	if params.Get("lat") == "" {
		fieldErrors["lat"] = append(fieldErrors["lat"], "Missing required field \"lat\".")
	}
	if params.Get("lon") == "" {
		fieldErrors["lon"] = append(fieldErrors["lon"], "Missing required field \"lon\".")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if fieldErrors := utils.ValidateLocationParams(lat, lon); len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	// Anchor the profile to the latest observed global anomaly when the
	// store has one.
	anomaly := geoprofile.DefaultTemperatureAnomaly
	observation, err := api.ClimateManager.ClimateDB.Queries.GetLatestObservation(
		r.Context(), climatedb.DataTypeTemperature, false)
	if err == nil {
		anomaly = observation.Value
	}

	profile := geoprofile.BuildProfile(lat, lon, anomaly)
	response := models.NewEntryResponse(profile, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
