package restapi

import (
	"net/http"

	"gaia.climateintel.org/internal/models"
)

func (api *RestAPI) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := api.ClimateManager.AggregatedStats(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(stats, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
