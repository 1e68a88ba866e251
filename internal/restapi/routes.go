package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/gaia/current-time.json", validateAPIKey(api, api.currentTimeHandler))
	router.Handler(http.MethodGet, "/api/gaia/status.json", validateAPIKey(api, api.statusHandler))

	router.Handler(http.MethodGet, "/api/gaia/observations/:type", validateAPIKey(api, api.observationsHandler))
	router.Handler(http.MethodGet, "/api/gaia/stats.json", validateAPIKey(api, api.statsHandler))
	router.Handler(http.MethodGet, "/api/gaia/trend/:type", validateAPIKey(api, api.trendHandler))
	router.Handler(http.MethodGet, "/api/gaia/alerts.json", validateAPIKey(api, api.alertsHandler))
	router.Handler(http.MethodPost, "/api/gaia/report-observation.json", validateAPIKey(api, api.reportObservationHandler))

	router.Handler(http.MethodGet, "/api/gaia/location-profile.json", validateAPIKey(api, api.locationProfileHandler))
	router.Handler(http.MethodGet, "/api/gaia/heatmap/:layer", validateAPIKey(api, api.heatmapHandler))
	router.Handler(http.MethodGet, "/api/gaia/map.json", validateAPIKey(api, api.mapHandler))
	router.Handler(http.MethodGet, "/api/gaia/datasets.json", validateAPIKey(api, api.datasetsHandler))
	router.Handler(http.MethodGet, "/api/gaia/dataset/*id", validateAPIKey(api, api.datasetHandler))

	router.Handler(http.MethodPost, "/api/gaia/footprint/individual.json", validateAPIKey(api, api.footprintIndividualHandler))
	router.Handler(http.MethodPost, "/api/gaia/footprint/organization.json", validateAPIKey(api, api.footprintOrganizationHandler))

	router.Handler(http.MethodGet, "/api/gaia/news/digest.json", validateAPIKey(api, api.newsDigestHandler))
	router.Handler(http.MethodGet, "/api/gaia/news/trending.json", validateAPIKey(api, api.newsTrendingHandler))

	router.Handler(http.MethodGet, "/api/gaia/simulations.json", validateAPIKey(api, api.simulationsHandler))
	router.Handler(http.MethodGet, "/api/gaia/simulation/:id", validateAPIKey(api, api.simulationHandler))

	router.Handler(http.MethodPost, "/api/gaia/auth/token.json", validateAPIKey(api, api.authTokenHandler))
	router.Handler(http.MethodPost, "/api/gaia/auth/register.json", validateAPIKey(api, api.authRegisterHandler))
	router.Handler(http.MethodGet, "/api/gaia/preferences.json", validateAPIKey(api, api.requireUser(api.getPreferencesHandler)))
	router.Handler(http.MethodPut, "/api/gaia/preferences.json", validateAPIKey(api, api.requireUser(api.updatePreferencesHandler)))
	router.Handler(http.MethodGet, "/api/gaia/locations.json", validateAPIKey(api, api.requireUser(api.listLocationsHandler)))
	router.Handler(http.MethodPost, "/api/gaia/locations.json", validateAPIKey(api, api.requireUser(api.createLocationHandler)))
	router.Handler(http.MethodDelete, "/api/gaia/location/:id", validateAPIKey(api, api.requireUser(api.deleteLocationHandler)))
}
