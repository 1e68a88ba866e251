package restapi

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

// reportObservationRequest is the POST body for user-submitted readings.
type reportObservationRequest struct {
	DataType  string   `json:"dataType"`
	Value     *float64 `json:"value"`
	Timestamp string   `json:"timestamp,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Comment   string   `json:"comment,omitempty"`
}

// reportedObservationSource marks rows submitted through the API so they
// are never clobbered by a feed re-import.
const reportedObservationSource = "user_report"

func (api *RestAPI) reportObservationHandler(w http.ResponseWriter, r *http.Request) {
	var request reportObservationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"Request body must be valid JSON."},
		})
		return
	}

	fieldErrors := make(map[string][]string)
	if !slices.Contains(climatedb.ObservationDataTypes, request.DataType) {
		fieldErrors["dataType"] = append(fieldErrors["dataType"], "Invalid field value for field \"dataType\".")
	}
	if request.Value == nil {
		fieldErrors["value"] = append(fieldErrors["value"], "Missing required field \"value\".")
	}

	timestamp := time.Now().UTC()
	if request.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, request.Timestamp)
		if err != nil {
			fieldErrors["timestamp"] = append(fieldErrors["timestamp"], "Invalid field value for field \"timestamp\".")
		} else {
			timestamp = parsed.UTC()
		}
	}

	if request.Latitude != nil {
		if err := utils.ValidateLatitude(*request.Latitude); err != nil {
			fieldErrors["latitude"] = append(fieldErrors["latitude"], err.Error())
		}
	}
	if request.Longitude != nil {
		if err := utils.ValidateLongitude(*request.Longitude); err != nil {
			fieldErrors["longitude"] = append(fieldErrors["longitude"], err.Error())
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	params := climatedb.InsertObservationParams{
		DataType:  request.DataType,
		Timestamp: timestamp,
		Value:     *request.Value,
		Source:    reportedObservationSource,
	}
	if request.Latitude != nil {
		params.Latitude = sql.NullFloat64{Float64: *request.Latitude, Valid: true}
	}
	if request.Longitude != nil {
		params.Longitude = sql.NullFloat64{Float64: *request.Longitude, Valid: true}
	}
	if comment := utils.SanitizeInput(request.Comment); comment != "" {
		metadata, err := json.Marshal(map[string]string{"comment": comment})
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		params.Metadata = string(metadata)
	}

	id, err := api.ClimateManager.ClimateDB.Queries.InsertObservation(r.Context(), params)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := map[string]interface{}{
		"id":       id,
		"dataType": request.DataType,
		"accepted": true,
	}
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
