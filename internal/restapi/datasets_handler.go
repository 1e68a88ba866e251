package restapi

import (
	"database/sql"
	"errors"
	"net/http"

	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

func (api *RestAPI) datasetsHandler(w http.ResponseWriter, r *http.Request) {
	datasets, err := api.ClimateManager.ClimateDB.Queries.ListDatasets(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(models.NewDatasetReferenceList(datasets), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) datasetHandler(w http.ResponseWriter, r *http.Request) {
	datasetID := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateDatasetID(datasetID); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	dataset, err := api.ClimateManager.ClimateDB.Queries.GetDataset(r.Context(), datasetID)
	if errors.Is(err, sql.ErrNoRows) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := map[string]interface{}{
		"dataset": models.NewDatasetReference(dataset),
		"layer":   api.EarthEngine.LayerFromDataset(dataset),
	}
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
