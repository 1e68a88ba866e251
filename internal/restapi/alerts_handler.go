package restapi

import (
	"net/http"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

func (api *RestAPI) alertsHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	filter := climatedb.AlertFilter{
		AlertType: params.Get("type"),
		Region:    utils.SanitizeInput(params.Get("region")),
	}

	var fieldErrors map[string][]string
	filter.MinSeverity, fieldErrors = utils.ParseIntParam(params, "minSeverity", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if filter.AlertType != "" {
		if err := utils.ValidateID(filter.AlertType); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{"type": {err.Error()}})
			return
		}
	}
	if err := utils.ValidateSeverity(filter.MinSeverity); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"minSeverity": {err.Error()}})
		return
	}
	if err := utils.ValidateQuery(filter.Region); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"region": {err.Error()}})
		return
	}

	alerts, err := api.ClimateManager.ActiveAlerts(r.Context(), filter)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(models.NewAlertList(alerts), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
