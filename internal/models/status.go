package models

import "gaia.climateintel.org/internal/earthengine"

// Status reports service health: database connectivity, Earth Engine mode
// and the freshness of the imported feeds.
type Status struct {
	DatabaseConnected bool                   `json:"databaseConnected"`
	ObservationCount  int64                  `json:"observationCount"`
	AlertCount        int64                  `json:"alertCount"`
	EarthEngine       earthengine.AuthStatus `json:"earthEngine"`
	LastFeedRefresh   string                 `json:"lastFeedRefresh,omitempty"`
	Environment       string                 `json:"environment"`
}
