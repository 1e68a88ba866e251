package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Alerts   []Alert            `json:"alerts"`
	Datasets []DatasetReference `json:"datasets"`
	Sources  []SourceReference  `json:"sources"`
}

// SourceReference identifies an upstream data provider referenced by a response
type SourceReference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Alerts:   []Alert{},
		Datasets: []DatasetReference{},
		Sources:  []SourceReference{},
	}
}
