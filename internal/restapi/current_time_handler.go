package restapi

import (
	"net/http"
	"time"

	"gaia.climateintel.org/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	currentTimeData := models.NewCurrentTimeData(time.Now())
	response := models.NewOKResponse(currentTimeData)
	api.sendResponse(w, r, response)
}
