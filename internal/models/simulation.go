package models

import (
	"encoding/json"
	"time"

	"gaia.climateintel.org/climatedb"
)

// SimulationResult is the API representation of a stored scenario run.
type SimulationResult struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Scenario    string          `json:"scenario"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
	Results     json.RawMessage `json:"results,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   string          `json:"createdAt"`
}

// NewSimulationResult converts a stored simulation row into its API model.
// The parameters and results columns already hold JSON, so they pass through
// without re-encoding.
func NewSimulationResult(row climatedb.SimulationResult) SimulationResult {
	result := SimulationResult{
		ID:        row.ExternalID,
		Name:      row.Name,
		Scenario:  row.Scenario,
		CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
	}
	if row.Parameters.Valid {
		result.Parameters = json.RawMessage(row.Parameters.String)
	}
	if row.Results.Valid {
		result.Results = json.RawMessage(row.Results.String)
	}
	if row.Description.Valid {
		result.Description = row.Description.String
	}
	return result
}

// NewSimulationResultList converts stored simulation rows into API models.
func NewSimulationResultList(rows []climatedb.SimulationResult) []SimulationResult {
	list := make([]SimulationResult, len(rows))
	for i, row := range rows {
		list[i] = NewSimulationResult(row)
	}
	return list
}
