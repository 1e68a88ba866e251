package models

import (
	"time"

	"gaia.climateintel.org/climatedb"
)

// Preferences holds the per-user display settings exposed by the API.
type Preferences struct {
	Theme                string `json:"theme"`
	DefaultMapView       string `json:"defaultMapView"`
	TemperatureUnit      string `json:"temperatureUnit"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	AdvancedMode         bool   `json:"advancedMode"`
}

// NewPreferences converts a stored preferences row into its API model.
func NewPreferences(row climatedb.UserPreference) Preferences {
	return Preferences{
		Theme:                row.Theme,
		DefaultMapView:       row.DefaultMapView,
		TemperatureUnit:      row.TemperatureUnit,
		NotificationsEnabled: row.NotificationsEnabled,
		AdvancedMode:         row.AdvancedMode,
	}
}

// SavedLocation is the API representation of a user-saved point of interest.
type SavedLocation struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// NewSavedLocation converts a stored location row into its API model.
func NewSavedLocation(row climatedb.SavedLocation) SavedLocation {
	location := SavedLocation{
		ID:        row.ID,
		Name:      row.Name,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
		CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
	}
	if row.Description.Valid {
		location.Description = row.Description.String
	}
	return location
}

// NewSavedLocationList converts stored location rows into API models.
func NewSavedLocationList(rows []climatedb.SavedLocation) []SavedLocation {
	list := make([]SavedLocation, len(rows))
	for i, row := range rows {
		list[i] = NewSavedLocation(row)
	}
	return list
}
