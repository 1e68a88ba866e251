package restapi

import (
	"net/http"

	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

// Default map view: centered on the equator at a whole-earth zoom.
const (
	defaultMapLatitude  = 20.0
	defaultMapLongitude = 0.0
	defaultMapZoom      = 2
)

func (api *RestAPI) mapHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var fieldErrors map[string][]string
	lat, fieldErrors := utils.ParseFloatParam(params, "lat", fieldErrors)
	lon, fieldErrors := utils.ParseFloatParam(params, "lon", fieldErrors)
	zoom, fieldErrors := utils.ParseIntParam(params, "zoom", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if params.Get("lat") == "" {
		lat = defaultMapLatitude
	}
	if params.Get("lon") == "" {
		lon = defaultMapLongitude
	}
	if zoom == 0 {
		zoom = defaultMapZoom
	}

	if fieldErrors := utils.ValidateLocationParams(lat, lon); len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	document, err := api.Heatmap.CombinedMap(r.Context(), lat, lon, int(zoom))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(document, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
