package models

import (
	"time"

	"gaia.climateintel.org/climatedb"
)

// Alert is the API representation of an environmental alert.
type Alert struct {
	ID          int64   `json:"id"`
	AlertType   string  `json:"alertType"`
	Severity    int64   `json:"severity"`
	Region      string  `json:"region"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	IssuedAt    string  `json:"issuedAt"`
	ExpiresAt   string  `json:"expiresAt,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// NewAlert converts a stored alert row into its API model.
func NewAlert(row climatedb.Alert) Alert {
	alert := Alert{
		ID:        row.ID,
		AlertType: row.AlertType,
		Severity:  row.Severity,
		Region:    row.Region,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
		Title:     row.Title,
		IssuedAt:  row.IssuedAt.UTC().Format(time.RFC3339),
	}
	if row.Description.Valid {
		alert.Description = row.Description.String
	}
	if row.ExpiresAt.Valid {
		alert.ExpiresAt = row.ExpiresAt.Time.UTC().Format(time.RFC3339)
	}
	if row.Source.Valid {
		alert.Source = row.Source.String
	}
	return alert
}

// NewAlertList converts stored alert rows into API models.
func NewAlertList(rows []climatedb.Alert) []Alert {
	list := make([]Alert, len(rows))
	for i, row := range rows {
		list[i] = NewAlert(row)
	}
	return list
}
