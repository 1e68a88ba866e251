package restapi

import (
	"net/http"
	"slices"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

func (api *RestAPI) trendHandler(w http.ResponseWriter, r *http.Request) {
	dataType := utils.ExtractIDFromParams(r, "type")

	if err := utils.ValidateID(dataType); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"type": {err.Error()}})
		return
	}
	if !slices.Contains(climatedb.ObservationDataTypes, dataType) {
		api.sendNotFound(w, r)
		return
	}

	trend, err := api.ClimateManager.TrendFor(r.Context(), dataType)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if trend == nil {
		api.sendNotFound(w, r)
		return
	}

	entry := map[string]interface{}{
		"dataType": dataType,
		"trend":    trend,
	}
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
