package restapi

import (
	"net/http"

	"gaia.climateintel.org/internal/models"
	"gaia.climateintel.org/internal/utils"
)

func (api *RestAPI) newsDigestHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var fieldErrors map[string][]string
	limit, fieldErrors := utils.ParseIntParam(params, "limit", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	items := api.News.Digest(int(limit))
	response := models.NewListResponse(items, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) newsTrendingHandler(w http.ResponseWriter, r *http.Request) {
	topics := api.News.TrendingTopics()
	response := models.NewListResponse(topics, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
