package climatedb

import (
	"database/sql"
	"strings"
	"time"
)

// Observation data types stored in the observations table
const (
	DataTypeTemperature = "temperature"
	DataTypeCO2         = "co2"
	DataTypeSeaLevel    = "sea_level"
	DataTypeIceExtent   = "ice_extent"
)

// Alert types stored in the alerts table
const (
	AlertTypeDrought        = "drought"
	AlertTypeFlood          = "flood"
	AlertTypeWildfire       = "wildfire"
	AlertTypeExtremeWeather = "extreme_weather"
	AlertTypeSeaLevel       = "sea_level"
)

// ObservationDataTypes lists every data type the store accepts
var ObservationDataTypes = []string{
	DataTypeTemperature,
	DataTypeCO2,
	DataTypeSeaLevel,
	DataTypeIceExtent,
}

// Observation is a single climate measurement or model prediction
type Observation struct {
	ID              int64
	DataType        string // temperature, co2, sea_level, ice_extent
	Timestamp       time.Time
	Value           float64
	Latitude        sql.NullFloat64
	Longitude       sql.NullFloat64
	Source          sql.NullString
	IsPrediction    bool
	PredictionModel sql.NullString
	Metadata        sql.NullString // JSON blob
	CreatedAt       time.Time
}

// Alert is an environmental alert covering a region
type Alert struct {
	ID          int64
	AlertType   string // drought, flood, wildfire, extreme_weather, sea_level
	Severity    int64  // 1-5, with 5 being most severe
	Region      string
	Latitude    float64
	Longitude   float64
	Title       string
	Description sql.NullString
	IssuedAt    time.Time
	ExpiresAt   sql.NullTime
	IsActive    bool
	Source      sql.NullString
}

// SimulationResult is a stored climate scenario run
type SimulationResult struct {
	ID          int64
	ExternalID  string
	Name        string
	Scenario    string
	Parameters  sql.NullString // JSON blob
	Results     sql.NullString // JSON blob
	Description sql.NullString
	CreatedBy   sql.NullInt64
	CreatedAt   time.Time
}

// Dataset is an Earth Engine image collection reference with visualization params
type Dataset struct {
	ID          int64
	DatasetID   string
	DisplayName string
	Description sql.NullString
	Band        string
	VisMin      float64
	VisMax      float64
	VisPalette  string // comma-separated color names
	CreatedAt   time.Time
}

// Palette splits the stored comma-separated palette into color names.
func (d Dataset) Palette() []string {
	if d.VisPalette == "" {
		return nil
	}
	colors := strings.Split(d.VisPalette, ",")
	for i := range colors {
		colors[i] = strings.TrimSpace(colors[i])
	}
	return colors
}

// User is a platform account
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    sql.NullTime
}

// UserPreference holds per-user display settings
type UserPreference struct {
	ID                   int64
	UserID               int64
	Theme                string
	DefaultMapView       string
	TemperatureUnit      string
	NotificationsEnabled bool
	AdvancedMode         bool
}

// SavedLocation is a user-saved point of interest
type SavedLocation struct {
	ID          int64
	UserID      int64
	Name        string
	Latitude    float64
	Longitude   float64
	Description sql.NullString
	CreatedAt   time.Time
}

// FeedImport records the last successful import of an external climate feed
type FeedImport struct {
	Feed        string
	FetchedAt   time.Time
	RecordCount int64
	Checksum    string
}
