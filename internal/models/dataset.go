package models

import "gaia.climateintel.org/climatedb"

// DatasetReference describes an Earth Engine image collection and how to
// render it.
type DatasetReference struct {
	DatasetID   string   `json:"datasetId"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description,omitempty"`
	Band        string   `json:"band"`
	VisMin      float64  `json:"visMin"`
	VisMax      float64  `json:"visMax"`
	Palette     []string `json:"palette"`
}

// NewDatasetReference converts a stored dataset row into its API model.
func NewDatasetReference(row climatedb.Dataset) DatasetReference {
	ref := DatasetReference{
		DatasetID:   row.DatasetID,
		DisplayName: row.DisplayName,
		Band:        row.Band,
		VisMin:      row.VisMin,
		VisMax:      row.VisMax,
		Palette:     row.Palette(),
	}
	if row.Description.Valid {
		ref.Description = row.Description.String
	}
	if ref.Palette == nil {
		ref.Palette = []string{}
	}
	return ref
}

// NewDatasetReferenceList converts stored dataset rows into API models.
func NewDatasetReferenceList(rows []climatedb.Dataset) []DatasetReference {
	list := make([]DatasetReference, len(rows))
	for i, row := range rows {
		list[i] = NewDatasetReference(row)
	}
	return list
}
