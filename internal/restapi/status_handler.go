package restapi

import (
	"net/http"
	"time"

	"gaia.climateintel.org/internal/models"
)

func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	queries := api.ClimateManager.ClimateDB.Queries

	status := models.Status{
		EarthEngine: api.EarthEngine.Status(),
		Environment: api.Config.Env.String(),
	}

	observationCount, err := queries.CountObservations(ctx)
	if err == nil {
		status.DatabaseConnected = true
		status.ObservationCount = observationCount
	}

	if status.DatabaseConnected {
		alertCount, err := queries.CountAlerts(ctx)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		status.AlertCount = alertCount
	}

	if lastRefreshed := api.ClimateManager.LastRefreshed(); !lastRefreshed.IsZero() {
		status.LastFeedRefresh = lastRefreshed.UTC().Format(time.RFC3339)
	}

	response := models.NewEntryResponse(status, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
