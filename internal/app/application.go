package app

import (
	"log/slog"

	"gaia.climateintel.org/internal/appconf"
	"gaia.climateintel.org/internal/auth"
	"gaia.climateintel.org/internal/climate"
	"gaia.climateintel.org/internal/earthengine"
	"gaia.climateintel.org/internal/heatmap"
	"gaia.climateintel.org/internal/news"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, a logger, and the domain services
// the handlers dispatch to.
type Application struct {
	Config         appconf.Config
	Logger         *slog.Logger
	ClimateManager *climate.Manager
	EarthEngine    *earthengine.Service
	Heatmap        *heatmap.Generator
	Auth           *auth.Service
	News           *news.Service
}
