package earthengine

import (
	"time"

	"gaia.climateintel.org/climatedb"
)

// Visualization carries the rendering parameters for a layer.
type Visualization struct {
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Palette []string `json:"palette"`
}

// ScaleTransform converts raw band values into display units, applied
// as value*Multiply + Add. MODIS land surface temperature, for example,
// is stored in scaled Kelvin and needs 0.02x - 273.15 to reach Celsius.
type ScaleTransform struct {
	Multiply float64 `json:"multiply"`
	Add      float64 `json:"add"`
}

// Layer describes one satellite layer: which image collection and band
// to use, the time window to average over, and how to render the result.
type Layer struct {
	DatasetID     string          `json:"datasetId"`
	Name          string          `json:"name"`
	Band          string          `json:"band"`
	WindowStart   time.Time       `json:"windowStart"`
	WindowEnd     time.Time       `json:"windowEnd"`
	Reducer       string          `json:"reducer"`
	Scale         *ScaleTransform `json:"scale,omitempty"`
	Visualization Visualization   `json:"visualization"`
}

// MapDocument is the full layer composition for the global map view.
type MapDocument struct {
	CenterLatitude  float64 `json:"centerLatitude"`
	CenterLongitude float64 `json:"centerLongitude"`
	Zoom            int     `json:"zoom"`
	Mode            string  `json:"mode"`
	Layers          []Layer `json:"layers"`
}

// Averaging windows for the default basemap layers.
const (
	temperatureWindow   = 30 * 24 * time.Hour
	vegetationWindow    = 60 * 24 * time.Hour
	precipitationWindow = 7 * 24 * time.Hour
	seaSurfaceWindow    = 30 * 24 * time.Hour
	defaultWindow       = 30 * 24 * time.Hour
)

// BuildMapDocument composes the default global map: land surface
// temperature, vegetation, precipitation and sea surface temperature,
// each averaged over its own recent window.
func (s *Service) BuildMapDocument(centerLat, centerLon float64, zoom int) MapDocument {
	now := time.Now().UTC()
	doc := MapDocument{
		CenterLatitude:  centerLat,
		CenterLongitude: centerLon,
		Zoom:            zoom,
		Mode:            s.Status().Mode,
	}

	doc.Layers = append(doc.Layers, Layer{
		DatasetID:   "MODIS/006/MOD11A1",
		Name:        "Land Surface Temperature",
		Band:        "LST_Day_1km",
		WindowStart: now.Add(-temperatureWindow),
		WindowEnd:   now,
		Reducer:     "mean",
		Scale:       &ScaleTransform{Multiply: 0.02, Add: -273.15},
		Visualization: Visualization{
			Min: -20, Max: 40,
			Palette: []string{"blue", "purple", "cyan", "green", "yellow", "red"},
		},
	})

	doc.Layers = append(doc.Layers, Layer{
		DatasetID:   "MODIS/006/MOD13A2",
		Name:        "Vegetation Index (NDVI)",
		Band:        "NDVI",
		WindowStart: now.Add(-vegetationWindow),
		WindowEnd:   now,
		Reducer:     "mean",
		Visualization: Visualization{
			Min: -2000, Max: 10000,
			Palette: []string{"brown", "yellow", "green", "darkgreen"},
		},
	})

	doc.Layers = append(doc.Layers, Layer{
		DatasetID:   "NASA/GPM_L3/IMERG_V06",
		Name:        "Precipitation",
		Band:        "precipitationCal",
		WindowStart: now.Add(-precipitationWindow),
		WindowEnd:   now,
		Reducer:     "mean",
		Visualization: Visualization{
			Min: 0, Max: 10,
			Palette: []string{"white", "blue", "purple", "red"},
		},
	})

	doc.Layers = append(doc.Layers, Layer{
		DatasetID:   "NASA/OCEANDATA/MODIS-Terra/L3SMI",
		Name:        "Sea Surface Temperature",
		Band:        "sst",
		WindowStart: now.Add(-seaSurfaceWindow),
		WindowEnd:   now,
		Reducer:     "mean",
		Visualization: Visualization{
			Min: -4, Max: 30,
			Palette: []string{"blue", "cyan", "green", "yellow", "red"},
		},
	})

	return doc
}

// LayerFromDataset builds a layer definition for a cataloged dataset,
// averaged over the default 30-day window.
func (s *Service) LayerFromDataset(dataset climatedb.Dataset) Layer {
	now := time.Now().UTC()
	layer := Layer{
		DatasetID:   dataset.DatasetID,
		Name:        dataset.DisplayName,
		Band:        dataset.Band,
		WindowStart: now.Add(-defaultWindow),
		WindowEnd:   now,
		Reducer:     "mean",
		Visualization: Visualization{
			Min:     dataset.VisMin,
			Max:     dataset.VisMax,
			Palette: dataset.Palette(),
		},
	}
	if dataset.DatasetID == "MODIS/006/MOD11A1" {
		layer.Scale = &ScaleTransform{Multiply: 0.02, Add: -273.15}
	}
	return layer
}
