package restapi

import (
	"database/sql"
	"errors"
	"net/http"

	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

func (api *RestAPI) simulationsHandler(w http.ResponseWriter, r *http.Request) {
	scenario := r.URL.Query().Get("scenario")
	if scenario != "" {
		if err := utils.ValidateID(scenario); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{"scenario": {err.Error()}})
			return
		}
	}

	results, err := api.ClimateManager.ClimateDB.Queries.GetSimulationResults(r.Context(), scenario)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(models.NewSimulationResultList(results), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) simulationHandler(w http.ResponseWriter, r *http.Request) {
	externalID := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateID(externalID); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	result, err := api.ClimateManager.ClimateDB.Queries.GetSimulationResult(r.Context(), externalID)
	if errors.Is(err, sql.ErrNoRows) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(models.NewSimulationResult(result), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
