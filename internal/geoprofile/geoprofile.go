// Package geoprofile derives a climate profile for a point on the
// globe: current conditions, climate risks scored 0-10, and a 50-year
// local history. Scores come from a latitude-band model; a production
// deployment would swap in elevation and reanalysis datasets.
package geoprofile

import (
	"math"
	"time"
)

// DefaultTemperatureAnomaly is used when no recent global anomaly
// record is available to the caller.
const DefaultTemperatureAnomaly = 1.1

// Risks are the location's climate risk scores, each on a 0-10 scale.
type Risks struct {
	SeaLevel     float64 `json:"seaLevel"`
	Biodiversity float64 `json:"biodiversity"`
	Drought      float64 `json:"drought"`
}

// YearRecord is one year of local history.
type YearRecord struct {
	Year          int     `json:"year"`
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
}

// Profile is the full climate profile for a location.
type Profile struct {
	Latitude            float64      `json:"latitude"`
	Longitude           float64      `json:"longitude"`
	CurrentTemperature  float64      `json:"currentTemperature"`
	TemperatureAnomaly  float64      `json:"temperatureAnomaly"`
	AnnualPrecipitation float64      `json:"annualPrecipitation"`
	Risks               Risks        `json:"risks"`
	History             []YearRecord `json:"history"`
}

// BuildProfile computes the climate profile for a location. The
// temperature anomaly is supplied by the caller, typically the mean
// global anomaly over the last 30 years of observations.
func BuildProfile(lat, lon, temperatureAnomaly float64) Profile {
	return Profile{
		Latitude:            lat,
		Longitude:           lon,
		CurrentTemperature:  round1(baseTemperature(lat, lon)),
		TemperatureAnomaly:  round1(temperatureAnomaly),
		AnnualPrecipitation: math.Round(basePrecipitation(lat, lon)),
		Risks: Risks{
			SeaLevel:     SeaLevelRisk(lat),
			Biodiversity: BiodiversityRisk(lat),
			Drought:      DroughtRisk(lat),
		},
		History: buildHistory(lat, lon, time.Now().UTC().Year()),
	}
}

// baseTemperature models mean temperature falling off with distance
// from the equator, with a small longitudinal variation.
func baseTemperature(lat, lon float64) float64 {
	return 15 - math.Abs(lat)*0.5 + math.Sin(lon*math.Pi/180)*2
}

// basePrecipitation models annual rainfall in millimeters, heaviest
// near the equator.
func basePrecipitation(lat, lon float64) float64 {
	return 1000 - math.Abs(lat)*10 + math.Cos(lon*math.Pi/180)*100
}

// SeaLevelRisk scores sea level rise exposure. Tropical latitudes carry
// the highest base risk.
func SeaLevelRisk(lat float64) float64 {
	equatorDistance := math.Abs(lat)
	switch {
	case equatorDistance < 20:
		return 8
	case equatorDistance < 40:
		return 6
	default:
		return 3
	}
}

// BiodiversityRisk scores biodiversity loss exposure, highest in the
// tropical hotspot latitudes.
func BiodiversityRisk(lat float64) float64 {
	equatorDistance := math.Abs(lat)
	switch {
	case equatorDistance < 15:
		return 9
	case equatorDistance < 30:
		return 7
	case equatorDistance < 50:
		return 5
	default:
		return 3
	}
}

// DroughtRisk scores drought exposure, highest in the subtropical
// desert belts and continental interiors.
func DroughtRisk(lat float64) float64 {
	equatorDistance := math.Abs(lat)
	switch {
	case equatorDistance > 15 && equatorDistance < 35:
		return 8
	case equatorDistance >= 35 && equatorDistance < 60:
		return 6
	case equatorDistance <= 15:
		return 4
	default:
		return 3
	}
}

// buildHistory generates 50 years of local temperature and
// precipitation. Temperature carries a 0.03 degree/year warming trend;
// precipitation dries in the subtropics and rises slightly elsewhere.
func buildHistory(lat, lon float64, currentYear int) []YearRecord {
	tempBase := baseTemperature(lat, lon)
	precipBase := basePrecipitation(lat, lon)
	subtropical := math.Abs(lat) > 15 && math.Abs(lat) < 35

	records := make([]YearRecord, 0, 51)
	for i, year := 0, currentYear-50; year <= currentYear; i, year = i+1, year+1 {
		precipTrend := float64(i) * 0.8
		if subtropical {
			precipTrend = -float64(i) * 1.5
		}
		records = append(records, YearRecord{
			Year:          year,
			Temperature:   math.Round((tempBase+float64(i)*0.03)*100) / 100,
			Precipitation: math.Max(10, math.Round(precipBase+precipTrend)),
		})
	}
	return records
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
