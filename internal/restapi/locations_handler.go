package restapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

type createLocationRequest struct {
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `json:"description,omitempty"`
}

func (api *RestAPI) listLocationsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		api.sendUnauthorized(w, r)
		return
	}

	locations, err := api.ClimateManager.ClimateDB.Queries.ListSavedLocations(r.Context(), user.ID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(models.NewSavedLocationList(locations), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) createLocationHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		api.sendUnauthorized(w, r)
		return
	}

	var request createLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"Request body must be valid JSON."},
		})
		return
	}

	fieldErrors := make(map[string][]string)
	name := utils.SanitizeInput(request.Name)
	if name == "" {
		fieldErrors["name"] = append(fieldErrors["name"], "Missing required field \"name\".")
	}
	if request.Latitude == nil {
		fieldErrors["latitude"] = append(fieldErrors["latitude"], "Missing required field \"latitude\".")
	} else if err := utils.ValidateLatitude(*request.Latitude); err != nil {
		fieldErrors["latitude"] = append(fieldErrors["latitude"], err.Error())
	}
	if request.Longitude == nil {
		fieldErrors["longitude"] = append(fieldErrors["longitude"], "Missing required field \"longitude\".")
	} else if err := utils.ValidateLongitude(*request.Longitude); err != nil {
		fieldErrors["longitude"] = append(fieldErrors["longitude"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	id, err := api.ClimateManager.ClimateDB.Queries.InsertSavedLocation(
		r.Context(), user.ID, name,
		*request.Latitude, *request.Longitude,
		utils.SanitizeInput(request.Description),
	)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := map[string]interface{}{
		"id":        id,
		"name":      name,
		"latitude":  *request.Latitude,
		"longitude": *request.Longitude,
	}
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) deleteLocationHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		api.sendUnauthorized(w, r)
		return
	}

	rawID := utils.ExtractIDFromParams(r, "id")
	locationID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {"Invalid field value for field \"id\"."},
		})
		return
	}

	err = api.ClimateManager.ClimateDB.Queries.DeleteSavedLocation(r.Context(), user.ID, locationID)
	if errors.Is(err, sql.ErrNoRows) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := map[string]interface{}{
		"id":      locationID,
		"deleted": true,
	}
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
