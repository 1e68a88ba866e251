package webui

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/davecgh/go-spew/spew"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/app"
)

//go:embed debug_index.html
var templateFS embed.FS

// WebUI serves the internal debug pages.
type WebUI struct {
	*app.Application
}

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")
	ctx := r.Context()
	queries := webUI.ClimateManager.ClimateDB.Queries

	var data interface{}
	var title string
	var err error

	switch dataType {
	case "observations":
		// Recent rows only, the full table runs to tens of thousands.
		data, err = queries.GetObservations(ctx, climatedb.ObservationFilter{
			Start: time.Now().AddDate(-5, 0, 0),
			Limit: 500,
		})
		title = "Climate Store - Recent Observations"
	case "alerts":
		data, err = queries.GetActiveAlerts(ctx, climatedb.AlertFilter{})
		title = "Climate Store - Active Alerts"
	case "datasets":
		data, err = queries.ListDatasets(ctx)
		title = "Climate Store - Dataset Catalog"
	case "simulations":
		data, err = queries.GetSimulationResults(ctx, "")
		title = "Climate Store - Scenario Results"
	case "earthengine":
		data = webUI.EarthEngine.Status()
		title = "Earth Engine - Auth Status"
	case "feeds":
		data = map[string]interface{}{
			"lastRefreshed": webUI.ClimateManager.LastRefreshed(),
			"feedsEnabled":  webUI.Config.FeedsEnabled,
		}
		title = "Feeds - Refresh State"
	default:
		data = map[string]string{
			"error": "Please use one of the following: observations, alerts, datasets, simulations, earthengine, feeds.",
		}
		title = "Choose a data type"
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeDebugData(w, title, data)
}
