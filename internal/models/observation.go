package models

import (
	"time"

	"gaia.climateintel.org/climatedb"
)

// Observation is the API representation of a single climate measurement
// or model prediction.
type Observation struct {
	ID              int64    `json:"id"`
	DataType        string   `json:"dataType"`
	Timestamp       string   `json:"timestamp"`
	Value           float64  `json:"value"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Source          string   `json:"source,omitempty"`
	IsPrediction    bool     `json:"isPrediction"`
	PredictionModel string   `json:"predictionModel,omitempty"`
}

// NewObservation converts a stored observation row into its API model.
func NewObservation(row climatedb.Observation) Observation {
	obs := Observation{
		ID:           row.ID,
		DataType:     row.DataType,
		Timestamp:    row.Timestamp.UTC().Format(time.RFC3339),
		Value:        row.Value,
		IsPrediction: row.IsPrediction,
	}
	if row.Latitude.Valid {
		lat := row.Latitude.Float64
		obs.Latitude = &lat
	}
	if row.Longitude.Valid {
		lon := row.Longitude.Float64
		obs.Longitude = &lon
	}
	if row.Source.Valid {
		obs.Source = row.Source.String
	}
	if row.PredictionModel.Valid {
		obs.PredictionModel = row.PredictionModel.String
	}
	return obs
}

// NewObservationList converts stored observation rows into API models,
// always returning a non-nil slice so empty results serialize as [].
func NewObservationList(rows []climatedb.Observation) []Observation {
	list := make([]Observation, len(rows))
	for i, row := range rows {
		list[i] = NewObservation(row)
	}
	return list
}
