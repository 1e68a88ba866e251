package climatedb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gaia.climateintel.org/internal/logging"
)

const seedSource = "GAIA-∞ Initial Data"
const predictionSource = "GAIA-∞ Prediction"
const businessAsUsualModel = "Business as Usual"

// SeedIfEmpty populates an empty database with initial users, historical
// observations, predictions, alerts, scenario results and the dataset catalog.
// A database that already holds observations is left untouched.
func (c *Client) SeedIfEmpty(ctx context.Context, logger *slog.Logger) error {
	count, err := c.Queries.CountObservations(ctx)
	if err != nil {
		return fmt.Errorf("error checking for existing data: %w", err)
	}
	if count > 0 {
		return nil
	}

	start := time.Now()

	if err := c.seedUsers(ctx); err != nil {
		return err
	}
	if err := c.seedObservations(ctx); err != nil {
		return err
	}
	if err := c.seedAlerts(ctx); err != nil {
		return err
	}
	if err := c.seedSimulationResults(ctx); err != nil {
		return err
	}
	if err := c.seedDatasets(ctx); err != nil {
		return err
	}

	logging.LogOperation(logger, "database_seeded",
		slog.String("component", "climatedb"),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func (c *Client) seedUsers(ctx context.Context) error {
	accounts := []struct {
		username string
		email    string
		password string
		role     string
	}{
		{"admin", "admin@gaia-infinity.ai", "admin123", "admin"},
		{"demo", "demo@gaia-infinity.ai", "demo123", "user"},
	}

	for _, account := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(account.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("error hashing seed password: %w", err)
		}
		_, err = c.Queries.CreateUser(ctx, CreateUserParams{
			Username:     account.username,
			Email:        account.email,
			PasswordHash: string(hash),
			Role:         account.role,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// seedObservations generates historical series anchored to published climate
// records: NASA GISS temperature anomalies, Mauna Loa CO2, satellite-era sea
// level and Arctic September ice minimum, plus 30 years of business-as-usual
// predictions for each series.
func (c *Client) seedObservations(ctx context.Context) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	currentYear := time.Now().Year()

	insert := func(params InsertObservationParams) error {
		_, err := c.Queries.InsertObservation(ctx, params)
		return err
	}
	meta := func(kind string) string {
		b, _ := json.Marshal(map[string]string{"type": kind})
		return string(b)
	}

	// Temperature anomalies, 1880 to present. Warming accelerates after 1979.
	var lastTemp float64
	for year := 1880; year <= currentYear; year++ {
		var anomaly float64
		if year < 1980 {
			anomaly = -0.2 + 0.5*float64(year-1880)/99.0
		} else {
			anomaly = 0.3 + 0.8*float64(year-1980)/float64(currentYear-1980)
		}
		anomaly += rng.NormFloat64() * 0.1
		lastTemp = anomaly

		err := insert(InsertObservationParams{
			DataType:  DataTypeTemperature,
			Timestamp: time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC),
			Value:     anomaly,
			Source:    seedSource,
			Metadata:  meta("global_average"),
		})
		if err != nil {
			return err
		}
	}

	// Monthly CO2 from 1960 with a seasonal cycle: highest in late spring,
	// lowest in autumn, like the Mauna Loa record.
	var lastCO2 float64
	for year := 1960; year <= currentYear; year++ {
		var perYear float64
		switch {
		case year < 1980:
			perYear = 0.85
		case year < 2000:
			perYear = 1.5
		default:
			perYear = 2.3
		}
		annual := 315.0 + perYear*float64(year-1960)
		lastCO2 = annual

		for month := time.January; month <= time.December; month++ {
			seasonal := 2.0 * math.Sin(2*math.Pi*float64(month-1)/12)
			value := annual + seasonal + rng.NormFloat64()*0.3

			err := insert(InsertObservationParams{
				DataType:  DataTypeCO2,
				Timestamp: time.Date(year, month, 15, 0, 0, 0, 0, time.UTC),
				Value:     value,
				Source:    seedSource,
				Metadata:  meta("global_average"),
			})
			if err != nil {
				return err
			}
		}
	}

	// Sea level relative to 1993 (satellite altimetry era), ~3.3 mm/yr.
	var lastSeaLevel float64
	for i, year := 0, 1993; year <= currentYear; i, year = i+1, year+1 {
		value := float64(i)*3.3 + rng.NormFloat64()
		lastSeaLevel = value

		err := insert(InsertObservationParams{
			DataType:  DataTypeSeaLevel,
			Timestamp: time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC),
			Value:     value,
			Source:    seedSource,
			Metadata:  meta("global_average"),
		})
		if err != nil {
			return err
		}
	}

	// Arctic September minimum ice extent from 1979, accelerating decline,
	// floored at a physically plausible 3.0 million sq km.
	var lastIce float64
	for i, year := 0, 1979; year <= currentYear; i, year = i+1, year+1 {
		var lossRate float64
		switch {
		case year < 2000:
			lossRate = 0.05
		case year < 2010:
			lossRate = 0.1
		default:
			lossRate = 0.15
		}
		value := 12.5 - float64(i)*lossRate + rng.NormFloat64()*0.2
		value = math.Max(value, 3.0)
		lastIce = value

		err := insert(InsertObservationParams{
			DataType:  DataTypeIceExtent,
			Timestamp: time.Date(year, time.September, 15, 0, 0, 0, 0, time.UTC),
			Value:     value,
			Source:    seedSource,
			Metadata:  meta("arctic_september_minimum"),
		})
		if err != nil {
			return err
		}
	}

	// Business-as-usual predictions for the next 30 years.
	for i := 1; i <= 30; i++ {
		year := currentYear + i
		predictions := []InsertObservationParams{
			{
				DataType:  DataTypeTemperature,
				Timestamp: time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC),
				Value:     lastTemp + 0.03*float64(i) + rng.NormFloat64()*0.05,
				Metadata:  meta("global_average"),
			},
			{
				DataType:  DataTypeCO2,
				Timestamp: time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC),
				Value:     lastCO2 + 2.5*float64(i) + rng.NormFloat64(),
				Metadata:  meta("global_average"),
			},
			{
				DataType:  DataTypeSeaLevel,
				Timestamp: time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC),
				Value:     lastSeaLevel + 3.5*float64(i) + rng.NormFloat64(),
				Metadata:  meta("global_average"),
			},
			{
				DataType:  DataTypeIceExtent,
				Timestamp: time.Date(year, time.September, 15, 0, 0, 0, 0, time.UTC),
				Value:     math.Max(0, lastIce-0.15*float64(i)+rng.NormFloat64()*0.1),
				Metadata:  meta("arctic_september_minimum"),
			},
		}
		for _, params := range predictions {
			params.Source = predictionSource
			params.IsPrediction = true
			params.PredictionModel = businessAsUsualModel
			if err := insert(params); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Client) seedAlerts(ctx context.Context) error {
	now := time.Now()
	expires := func(d time.Duration) sql.NullTime {
		return sql.NullTime{Time: now.Add(d), Valid: true}
	}

	alerts := []InsertAlertParams{
		{
			AlertType: AlertTypeExtremeWeather,
			Severity:  4,
			Region:    "South Asia",
			Latitude:  28.7041,
			Longitude: 77.1025,
			Title:     "Extreme Heat Wave: Northern India",
			Description: "Temperatures exceeding 45°C (113°F) expected to affect over 100 million people " +
				"across northern India for the next 5-7 days. Heat wave conditions expected to impact " +
				"agriculture, increase water demand, and pose significant health risks.",
			ExpiresAt: expires(7 * 24 * time.Hour),
			Source:    "GAIA-∞ Climate Intelligence",
		},
		{
			AlertType: AlertTypeDrought,
			Severity:  3,
			Region:    "Western United States",
			Latitude:  36.7783,
			Longitude: -119.4179,
			Title:     "Severe Drought Conditions: Western US",
			Description: "Persistent drought conditions worsening across Western states, with over 75% of " +
				"the region experiencing moderate to severe drought. Water reservoirs at critical levels " +
				"and increasing wildfire risk.",
			ExpiresAt: expires(90 * 24 * time.Hour),
			Source:    "GAIA-∞ Climate Intelligence",
		},
		{
			AlertType: AlertTypeFlood,
			Severity:  5,
			Region:    "Southeast Asia",
			Latitude:  14.0583,
			Longitude: 108.2772,
			Title:     "Monsoon Flooding: Vietnam and Cambodia",
			Description: "Heavy monsoon rainfall causing severe flooding across multiple provinces. Over " +
				"100,000 people displaced and critical infrastructure damaged. Additional rainfall " +
				"expected to worsen conditions over the next 72 hours.",
			ExpiresAt: expires(5 * 24 * time.Hour),
			Source:    "GAIA-∞ Climate Intelligence",
		},
		{
			AlertType: AlertTypeSeaLevel,
			Severity:  3,
			Region:    "Pacific Islands",
			Latitude:  -17.7134,
			Longitude: 178.0650,
			Title:     "King Tide Coastal Flooding: Fiji",
			Description: "Exceptionally high 'king tides' combined with rising sea levels causing significant " +
				"coastal flooding in low-lying communities. Infrastructure damage and saltwater " +
				"contamination of freshwater resources reported.",
			ExpiresAt: expires(3 * 24 * time.Hour),
			Source:    "GAIA-∞ Climate Intelligence",
		},
		{
			AlertType: AlertTypeWildfire,
			Severity:  4,
			Region:    "Mediterranean",
			Latitude:  38.7223,
			Longitude: -9.1393,
			Title:     "Extreme Fire Danger: Portugal and Spain",
			Description: "Combination of drought conditions, high temperatures, and strong winds creating " +
				"extreme fire danger across the Iberian Peninsula. Multiple active fires already " +
				"reported with rapid spread potential.",
			ExpiresAt: expires(10 * 24 * time.Hour),
			Source:    "GAIA-∞ Climate Intelligence",
		},
	}

	for _, params := range alerts {
		if _, err := c.Queries.InsertAlert(ctx, params); err != nil {
			return err
		}
	}
	return nil
}

// seedSimulationResults stores reference warming projections for the three
// standard emission scenarios. The curves are precomputed trajectories, not
// output of a simulation engine.
func (c *Client) seedSimulationResults(ctx context.Context) error {
	currentYear := time.Now().Year()

	scenarios := []struct {
		externalID  string
		name        string
		scenario    string
		description string
		warmingBy   float64 // degrees over the 80-year horizon
	}{
		{
			externalID:  "sim-bau-baseline",
			name:        "Business as Usual Projection",
			scenario:    "business_as_usual",
			description: "Reference projection assuming current emission trajectories continue unchanged.",
			warmingBy:   3.2,
		},
		{
			externalID:  "sim-moderate-mitigation",
			name:        "Moderate Mitigation Projection",
			scenario:    "moderate_mitigation",
			description: "Projection assuming emissions peak by 2035 and decline gradually thereafter.",
			warmingBy:   2.1,
		},
		{
			externalID:  "sim-aggressive-action",
			name:        "Aggressive Climate Action Projection",
			scenario:    "aggressive_action",
			description: "Projection assuming rapid decarbonization reaching net zero by 2050.",
			warmingBy:   1.6,
		},
	}

	for _, s := range scenarios {
		years := make([]int, 0, 81)
		warming := make([]float64, 0, 81)
		for i := 0; i <= 80; i++ {
			years = append(years, currentYear+i)
			warming = append(warming, 1.1+(s.warmingBy-1.1)*float64(i)/80.0)
		}

		parameters, _ := json.Marshal(map[string]interface{}{
			"scenario":      s.scenario,
			"start_year":    currentYear,
			"horizon_years": 80,
		})
		results, _ := json.Marshal(map[string]interface{}{
			"years":           years,
			"warming_degrees": warming,
		})

		_, err := c.Queries.InsertSimulationResult(ctx, InsertSimulationResultParams{
			ExternalID:  s.externalID,
			Name:        s.name,
			Scenario:    s.scenario,
			Parameters:  string(parameters),
			Results:     string(results),
			Description: s.description,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) seedDatasets(ctx context.Context) error {
	datasets := []InsertDatasetParams{
		{
			DatasetID:   "MODIS/006/MOD11A1",
			DisplayName: "Land Surface Temperature",
			Description: "MODIS Land Surface Temperature daily global 1km",
			Band:        "LST_Day_1km",
			VisMin:      -20,
			VisMax:      40,
			VisPalette:  "blue,purple,cyan,green,yellow,red",
		},
		{
			DatasetID:   "MODIS/006/MOD13A2",
			DisplayName: "Vegetation Index (NDVI)",
			Description: "MODIS Vegetation Index (NDVI) 16-day global 1km",
			Band:        "NDVI",
			VisMin:      -2000,
			VisMax:      10000,
			VisPalette:  "brown,yellow,green,darkgreen",
		},
		{
			DatasetID:   "NASA/GPM_L3/IMERG_V06",
			DisplayName: "Precipitation",
			Description: "Global Precipitation Measurement (GPM) 30-minute 0.1 degree",
			Band:        "precipitationCal",
			VisMin:      0,
			VisMax:      10,
			VisPalette:  "white,blue,purple,red",
		},
		{
			DatasetID:   "NASA/OCEANDATA/MODIS-Terra/L3SMI",
			DisplayName: "Sea Surface Temperature",
			Description: "MODIS Terra Ocean Color SMI",
			Band:        "sst",
			VisMin:      -4,
			VisMax:      30,
			VisPalette:  "blue,cyan,green,yellow,red",
		},
		{
			DatasetID:   "COPERNICUS/S5P/NRTI/L3_CO",
			DisplayName: "Carbon Monoxide",
			Description: "Sentinel-5P Carbon Monoxide",
			Band:        "CO_column_number_density",
			VisMin:      0,
			VisMax:      0.05,
			VisPalette:  "black,blue,purple,cyan,green,yellow,red",
		},
	}

	for _, params := range datasets {
		if err := c.Queries.InsertDataset(ctx, params); err != nil {
			return err
		}
	}
	return nil
}
