// Package heatmap builds the map documents for the global heatmap
// views: temperature and precipitation rasters when Earth Engine is
// connected, database-backed point heat data otherwise, plus a GeoJSON
// overlay of active extreme events.
package heatmap

import (
	"context"
	"time"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/earthengine"
)

// DefaultWindowDays is the lookback window for heatmap data.
const DefaultWindowDays = 7

// GlobalMeanTemperature is the long-term global average in Celsius the
// temperature anomaly raster is centered on.
const GlobalMeanTemperature = 14.0

// Point is one weighted location in a point-based heat layer.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Value     float64 `json:"value"`
}

// Document is a single heatmap layer: a satellite raster when Earth
// Engine is connected, otherwise observation points with a gradient.
type Document struct {
	Kind        string             `json:"kind"`
	Mode        string             `json:"mode"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Layer       *earthengine.Layer `json:"layer,omitempty"`
	Points      []Point            `json:"points,omitempty"`
	Gradient    map[string]string  `json:"gradient,omitempty"`
	Note        string             `json:"note,omitempty"`
}

// CombinedDocument is the full map view: heat layers plus the extreme
// event overlay.
type CombinedDocument struct {
	CenterLatitude  float64            `json:"centerLatitude"`
	CenterLongitude float64            `json:"centerLongitude"`
	Zoom            int                `json:"zoom"`
	Layers          []Document         `json:"layers"`
	Events          *FeatureCollection `json:"events"`
}

// Generator composes heatmap documents from the observation store and
// the Earth Engine service.
type Generator struct {
	queries     *climatedb.Queries
	earthEngine *earthengine.Service
}

func NewGenerator(queries *climatedb.Queries, earthEngine *earthengine.Service) *Generator {
	return &Generator{queries: queries, earthEngine: earthEngine}
}

// TemperatureHeatmap builds the global temperature anomaly layer. With
// Earth Engine connected it describes a MODIS anomaly raster; otherwise
// it falls back to located observations from the last windowDays days.
func (g *Generator) TemperatureHeatmap(ctx context.Context, windowDays int) (Document, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	now := time.Now().UTC()

	doc := Document{
		Kind:        "temperature",
		Mode:        g.earthEngine.Status().Mode,
		GeneratedAt: now,
	}

	if g.earthEngine.Connected() {
		doc.Layer = &earthengine.Layer{
			DatasetID:   "MODIS/006/MOD11A1",
			Name:        "Temperature Anomaly",
			Band:        "LST_Day_1km",
			WindowStart: now.AddDate(0, 0, -windowDays),
			WindowEnd:   now,
			Reducer:     "mean",
			// Scaled Kelvin to Celsius, then centered on the long-term mean.
			Scale: &earthengine.ScaleTransform{Multiply: 0.02, Add: -273.15 - GlobalMeanTemperature},
			Visualization: earthengine.Visualization{
				Min: -10, Max: 10,
				Palette: []string{"blue", "purple", "cyan", "green", "yellow", "orange", "red"},
			},
		}
		return doc, nil
	}

	observations, err := g.queries.GetObservations(ctx, climatedb.ObservationFilter{
		DataType: climatedb.DataTypeTemperature,
		Start:    now.AddDate(0, 0, -windowDays),
		End:      now,
	})
	if err != nil {
		return Document{}, err
	}

	for _, observation := range observations {
		if !observation.Latitude.Valid || !observation.Longitude.Valid {
			continue
		}
		doc.Points = append(doc.Points, Point{
			Latitude:  observation.Latitude.Float64,
			Longitude: observation.Longitude.Float64,
			Value:     observation.Value,
		})
	}
	doc.Gradient = map[string]string{
		"0.2": "blue", "0.4": "green", "0.6": "yellow", "0.8": "orange", "1.0": "red",
	}
	if len(doc.Points) == 0 {
		doc.Note = "no located temperature observations in window"
	}
	return doc, nil
}

// PrecipitationHeatmap builds the global precipitation layer. There is
// no database fallback; without Earth Engine the document carries a
// note instead of data.
func (g *Generator) PrecipitationHeatmap(windowDays int) Document {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	now := time.Now().UTC()

	doc := Document{
		Kind:        "precipitation",
		Mode:        g.earthEngine.Status().Mode,
		GeneratedAt: now,
	}

	if !g.earthEngine.Connected() {
		doc.Note = "precipitation heatmap requires Earth Engine access"
		return doc
	}

	doc.Layer = &earthengine.Layer{
		DatasetID:   "NASA/GPM_L3/IMERG_V06",
		Name:        "Precipitation",
		Band:        "precipitationCal",
		WindowStart: now.AddDate(0, 0, -windowDays),
		WindowEnd:   now,
		Reducer:     "mean",
		Visualization: earthengine.Visualization{
			Min: 0, Max: 10,
			Palette: []string{"white", "blue", "purple", "red"},
		},
	}
	return doc
}

// CombinedMap assembles the temperature layer, the precipitation layer
// when available, and the extreme event overlay.
func (g *Generator) CombinedMap(ctx context.Context, centerLat, centerLon float64, zoom int) (CombinedDocument, error) {
	temperature, err := g.TemperatureHeatmap(ctx, DefaultWindowDays)
	if err != nil {
		return CombinedDocument{}, err
	}

	doc := CombinedDocument{
		CenterLatitude:  centerLat,
		CenterLongitude: centerLon,
		Zoom:            zoom,
		Layers:          []Document{temperature},
	}

	if g.earthEngine.Connected() {
		doc.Layers = append(doc.Layers, g.PrecipitationHeatmap(DefaultWindowDays))
	}

	events, err := g.EventsOverlay(ctx)
	if err != nil {
		return CombinedDocument{}, err
	}
	doc.Events = events
	return doc, nil
}
