package heatmap

import (
	"context"
	"time"

	"gaia.climateintel.org/climatedb"
)

// Marker styling per alert type, matching the map client's Font Awesome
// icon set.
var (
	eventIcons = map[string]string{
		climatedb.AlertTypeDrought:        "tint-slash",
		climatedb.AlertTypeFlood:          "water",
		climatedb.AlertTypeWildfire:       "fire",
		climatedb.AlertTypeExtremeWeather: "cloud-bolt",
		climatedb.AlertTypeSeaLevel:       "water-rise",
	}
	eventColors = map[string]string{
		climatedb.AlertTypeDrought:        "orange",
		climatedb.AlertTypeFlood:          "blue",
		climatedb.AlertTypeWildfire:       "red",
		climatedb.AlertTypeExtremeWeather: "purple",
		climatedb.AlertTypeSeaLevel:       "darkblue",
	}
)

// Geometry is a GeoJSON point geometry. Coordinates are [longitude, latitude].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Feature is a GeoJSON feature for one extreme event.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection is a GeoJSON collection of event features.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Stats summarizes the current heatmap inputs and active events.
type Stats struct {
	DataSources         []string  `json:"dataSources"`
	Coverage            string    `json:"coverage"`
	Resolution          string    `json:"resolution"`
	ActiveEvents        int       `json:"activeEvents"`
	AverageSeverity     float64   `json:"averageSeverity,omitempty"`
	MostAffectedRegion  string    `json:"mostAffectedRegion,omitempty"`
	MostCommonEventType string    `json:"mostCommonEventType,omitempty"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

// EventsOverlay builds a GeoJSON overlay of all active extreme events.
func (g *Generator) EventsOverlay(ctx context.Context) (*FeatureCollection, error) {
	alerts, err := g.queries.GetActiveAlerts(ctx, climatedb.AlertFilter{})
	if err != nil {
		return nil, err
	}

	collection := &FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
	for _, alert := range alerts {
		icon, ok := eventIcons[alert.AlertType]
		if !ok {
			icon = "exclamation"
		}
		color, ok := eventColors[alert.AlertType]
		if !ok {
			color = "gray"
		}

		collection.Features = append(collection.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: [2]float64{alert.Longitude, alert.Latitude},
			},
			Properties: map[string]any{
				"title":       alert.Title,
				"alertType":   alert.AlertType,
				"severity":    alert.Severity,
				"region":      alert.Region,
				"description": alert.Description.String,
				"issuedAt":    alert.IssuedAt,
				"icon":        icon,
				"color":       color,
			},
		})
	}
	return collection, nil
}

// HeatmapStats aggregates active event counts, severity and the most
// affected region for the heatmap sidebar.
func (g *Generator) HeatmapStats(ctx context.Context) (Stats, error) {
	stats := Stats{
		DataSources: []string{
			"MODIS Land Surface Temperature",
			"NASA GPM Precipitation",
			"Database events",
		},
		Coverage:    "Global",
		Resolution:  "1km (temperature), 10km (precipitation)",
		GeneratedAt: time.Now().UTC(),
	}

	alerts, err := g.queries.GetActiveAlerts(ctx, climatedb.AlertFilter{})
	if err != nil {
		return Stats{}, err
	}
	if len(alerts) == 0 {
		return stats, nil
	}

	regions := make(map[string]int)
	types := make(map[string]int)
	totalSeverity := int64(0)
	for _, alert := range alerts {
		regions[alert.Region]++
		types[alert.AlertType]++
		totalSeverity += alert.Severity
	}

	stats.ActiveEvents = len(alerts)
	stats.AverageSeverity = float64(totalSeverity) / float64(len(alerts))
	stats.MostAffectedRegion = maxKey(regions)
	stats.MostCommonEventType = maxKey(types)
	return stats, nil
}

func maxKey(counts map[string]int) string {
	var best string
	bestCount := -1
	for key, count := range counts {
		if count > bestCount || (count == bestCount && key < best) {
			best = key
			bestCount = count
		}
	}
	return best
}
