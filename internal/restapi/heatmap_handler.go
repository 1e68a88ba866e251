package restapi

import (
	"net/http"

	"gaia.climateintel.org/internal/heatmap"
	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

func (api *RestAPI) heatmapHandler(w http.ResponseWriter, r *http.Request) {
	layer := utils.ExtractIDFromParams(r, "layer")

	if err := utils.ValidateID(layer); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"layer": {err.Error()}})
		return
	}

	params := r.URL.Query()
	var fieldErrors map[string][]string
	windowDays, fieldErrors := utils.ParseIntParam(params, "windowDays", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	if windowDays == 0 {
		windowDays = heatmap.DefaultWindowDays
	}

	var entry interface{}
	switch layer {
	case "temperature":
		document, err := api.Heatmap.TemperatureHeatmap(r.Context(), int(windowDays))
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		entry = document
	case "precipitation":
		entry = api.Heatmap.PrecipitationHeatmap(int(windowDays))
	case "events":
		overlay, err := api.Heatmap.EventsOverlay(r.Context())
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		entry = overlay
	case "stats":
		stats, err := api.Heatmap.HeatmapStats(r.Context())
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		entry = stats
	default:
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
