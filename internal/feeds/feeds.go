// Package feeds downloads and parses the public climate records that
// back the observation store: NOAA global temperature anomalies, the
// Mauna Loa CO2 annual means, the NASA global mean sea level series and
// the NSIDC Arctic sea ice index. When a feed is unreachable a synthetic
// series anchored to published values is generated instead.
package feeds

import (
	"gaia.climateintel.org/climatedb"
)

// Feed identifiers. These are used as the source key in feed_imports
// and as the source attribution on imported observations.
const (
	FeedGlobalTemperature = "noaa_global_temp"
	FeedCO2Concentration  = "noaa_mauna_loa_co2"
	FeedSeaLevel          = "nasa_sea_level"
	FeedArcticIce         = "nsidc_arctic_ice"
)

// AllFeeds lists every feed in import order.
var AllFeeds = []string{
	FeedGlobalTemperature,
	FeedCO2Concentration,
	FeedSeaLevel,
	FeedArcticIce,
}

// Default upstream locations for each feed.
const (
	DefaultTemperatureURL = "https://www.ncei.noaa.gov/access/monitoring/climate-at-a-glance/global/time-series/globe/land_ocean/ann/12/1880-2023.csv"
	DefaultCO2URL         = "https://gml.noaa.gov/webdata/ccgg/trends/co2/co2_annmean_mlo.txt"
	DefaultSeaLevelURL    = "https://climate.nasa.gov/system/internal_resources/details/original/121_Global_Sea_Level_Data_File.txt"
	DefaultArcticIceURL   = "ftp://sidads.colorado.edu/DATASETS/NOAA/G02135/north/annual/data/N_seaice_extent_annual_v3.0.csv"
)

// Record is a single annual reading from a feed.
type Record struct {
	Year        int
	Value       float64
	Uncertainty float64
}

// Series is a parsed feed: one record per year, plus a checksum of the
// raw payload so unchanged feeds can be skipped on re-import.
type Series struct {
	Feed      string
	DataType  string
	Records   []Record
	Checksum  string
	Synthetic bool
}

// DataTypeForFeed maps a feed identifier to the observation data type
// its records are stored under.
func DataTypeForFeed(feed string) string {
	switch feed {
	case FeedGlobalTemperature:
		return climatedb.DataTypeTemperature
	case FeedCO2Concentration:
		return climatedb.DataTypeCO2
	case FeedSeaLevel:
		return climatedb.DataTypeSeaLevel
	case FeedArcticIce:
		return climatedb.DataTypeIceExtent
	}
	return ""
}
