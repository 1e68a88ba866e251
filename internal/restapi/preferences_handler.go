package restapi

import (
	"encoding/json"
	"net/http"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/models"
)

func (api *RestAPI) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		api.sendUnauthorized(w, r)
		return
	}

	prefs, err := api.ClimateManager.ClimateDB.Queries.GetPreferences(r.Context(), user.ID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(models.NewPreferences(prefs), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		api.sendUnauthorized(w, r)
		return
	}

	var request models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"Request body must be valid JSON."},
		})
		return
	}

	fieldErrors := make(map[string][]string)
	switch request.Theme {
	case "", "light", "dark":
	default:
		fieldErrors["theme"] = append(fieldErrors["theme"], "Invalid field value for field \"theme\".")
	}
	switch request.TemperatureUnit {
	case "", "celsius", "fahrenheit":
	default:
		fieldErrors["temperatureUnit"] = append(fieldErrors["temperatureUnit"], "Invalid field value for field \"temperatureUnit\".")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	current, err := api.ClimateManager.ClimateDB.Queries.GetPreferences(r.Context(), user.ID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if request.Theme != "" {
		current.Theme = request.Theme
	}
	if request.DefaultMapView != "" {
		current.DefaultMapView = request.DefaultMapView
	}
	if request.TemperatureUnit != "" {
		current.TemperatureUnit = request.TemperatureUnit
	}
	current.NotificationsEnabled = request.NotificationsEnabled
	current.AdvancedMode = request.AdvancedMode

	updated := climatedb.UserPreference{
		UserID:               user.ID,
		Theme:                current.Theme,
		DefaultMapView:       current.DefaultMapView,
		TemperatureUnit:      current.TemperatureUnit,
		NotificationsEnabled: current.NotificationsEnabled,
		AdvancedMode:         current.AdvancedMode,
	}
	if err := api.ClimateManager.ClimateDB.Queries.UpsertPreferences(r.Context(), updated); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(models.NewPreferences(updated), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
