package restapi

import (
	"net/http"
	"slices"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

func (api *RestAPI) observationsHandler(w http.ResponseWriter, r *http.Request) {
	dataType := utils.ExtractIDFromParams(r, "type")

	if err := utils.ValidateID(dataType); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"type": {err.Error()}})
		return
	}
	if !slices.Contains(climatedb.ObservationDataTypes, dataType) {
		api.sendNotFound(w, r)
		return
	}

	params := r.URL.Query()
	filter := climatedb.ObservationFilter{DataType: dataType}

	var fieldErrors map[string][]string
	filter.Start, fieldErrors = utils.ParseTimeParam(params, "from", fieldErrors)
	filter.End, fieldErrors = utils.ParseTimeParam(params, "to", fieldErrors)
	filter.IsPrediction, fieldErrors = utils.ParseBoolParam(params, "predictions", fieldErrors)
	filter.Limit, fieldErrors = utils.ParseIntParam(params, "limit", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	observations, err := api.ClimateManager.Observations(r.Context(), filter)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(models.NewObservationList(observations), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
