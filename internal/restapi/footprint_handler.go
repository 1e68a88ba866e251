package restapi

import (
	"encoding/json"
	"net/http"

	"gaia.climateintel.org/internal/footprint"
	"gaia.climateintel.org/internal/models"
)

// individualFootprintRequest is the POST body for the individual
// calculator: activity data plus an optional country for the
// per-capita comparison.
type individualFootprintRequest struct {
	footprint.IndividualInput
	Country string `json:"country,omitempty"`
}

type organizationFootprintRequest struct {
	footprint.OrganizationInput
	Employees int `json:"employees,omitempty"`
}

func (api *RestAPI) footprintIndividualHandler(w http.ResponseWriter, r *http.Request) {
	var request individualFootprintRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"Request body must be valid JSON."},
		})
		return
	}

	result := footprint.CalculateIndividual(request.IndividualInput)
	comparison := footprint.CompareToAverage(result.TotalTonnes, request.Country)
	recommendations := footprint.RecommendReductions(result.Categories)

	entry := map[string]interface{}{
		"footprint":       result,
		"comparison":      comparison,
		"recommendations": recommendations,
	}
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) footprintOrganizationHandler(w http.ResponseWriter, r *http.Request) {
	var request organizationFootprintRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"Request body must be valid JSON."},
		})
		return
	}

	result := footprint.CalculateOrganization(request.OrganizationInput)
	recommendations := footprint.RecommendReductions(result.Categories)

	entry := map[string]interface{}{
		"footprint":       result,
		"recommendations": recommendations,
	}
	if request.Employees > 0 {
		entry["perEmployeeTonnes"] = result.TotalTonnes / float64(request.Employees)
	}
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
