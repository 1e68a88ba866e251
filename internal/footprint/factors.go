package footprint

// Emission factors. Electricity and heating are kg CO2e per kWh, food
// is kg CO2e per kg, freight is kg CO2e per tonne-km, passenger
// transport is kg CO2e per passenger-km, water is kg CO2e per cubic
// meter and construction is kg CO2e per square meter.

const GlobalAverageLocation = "global_average"

var electricityCountryFactors = map[string]float64{
	GlobalAverageLocation: 0.475,
	"usa":                 0.417,
	"china":               0.555,
	"india":               0.708,
	"eu_average":          0.275,
	"uk":                  0.233,
	"france":              0.056, // nuclear-heavy grid
	"germany":             0.338,
	"australia":           0.660,
	"canada":              0.120,
	"brazil":              0.074, // hydro-heavy grid
	"south_africa":        0.869,
}

var electricitySourceFactors = map[string]float64{
	"coal":        0.920,
	"natural_gas": 0.490,
	"oil":         0.650,
	"nuclear":     0.012,
	"solar":       0.045,
	"wind":        0.011,
	"hydro":       0.024,
	"geothermal":  0.038,
	"biomass":     0.230,
}

var passengerFactors = map[string]float64{
	"car_petrol":           0.192,
	"car_diesel":           0.171,
	"car_hybrid":           0.106,
	"motorcycle":           0.103,
	"bus":                  0.105,
	"train_local":          0.041,
	"train_high_speed":     0.006,
	"subway":               0.027,
	"ferry":                0.115,
	"airplane_short_haul":  0.156,
	"airplane_medium_haul": 0.138,
	"airplane_long_haul":   0.110,
	"bicycle":              0.005,
	"walking":              0.000,
}

// Electric cars depend on the local grid mix.
var electricCarFactors = map[string]float64{
	GlobalAverageLocation: 0.081,
	"usa":                 0.071,
	"eu_average":          0.047,
}

var freightFactors = map[string]float64{
	"truck_large":      0.092,
	"truck_medium":     0.135,
	"train":            0.028,
	"ship_container":   0.008,
	"ship_bulk":        0.005,
	"airplane_freight": 0.800,
}

var foodFactors = map[string]float64{
	"beef":               60.0,
	"lamb":               24.0,
	"pork":               7.0,
	"chicken":            6.0,
	"fish_farmed":        5.0,
	"fish_wild":          3.0,
	"eggs":               4.5,
	"milk":               1.9,
	"cheese":             13.5,
	"rice":               4.0,
	"wheat":              1.4,
	"corn":               1.0,
	"potatoes":           0.3,
	"vegetables_average": 0.5,
	"fruits_average":     0.4,
	"legumes":            0.9,
	"tofu":               2.0,
	"nuts":               1.5,
	"chocolate":          19.0,
	"coffee":             17.0,
}

var productFactors = map[string]map[string]float64{
	"electronics": {
		"smartphone":       70.0,
		"laptop":           300.0,
		"desktop_computer": 500.0,
		"tv_lcd":           300.0,
		"tablet":           100.0,
	},
	"clothing": {
		"cotton_shirt":    7.0,
		"jeans":           25.0,
		"synthetic_shirt": 5.5,
		"wool_sweater":    20.0,
		"shoes_leather":   15.0,
	},
	"materials": {
		"paper":    1.1,
		"plastic":  3.5,
		"aluminum": 8.0,
		"steel":    1.9,
		"glass":    0.85,
		"concrete": 0.11,
		"timber":   0.45,
	},
}

var heatingFactors = map[string]float64{
	"natural_gas":      0.198,
	"heating_oil":      0.266,
	"propane":          0.215,
	"biomass":          0.029,
	"district_heating": 0.072,
}

// Fuels burned on site count toward an organization's scope 1.
var directHeatingFuels = map[string]bool{
	"natural_gas": true,
	"heating_oil": true,
	"propane":     true,
}

const (
	waterSupplyFactor    = 0.344
	waterTreatmentFactor = 0.708
)

var constructionFactors = map[string]float64{
	"residential": 500.0,
	"commercial":  800.0,
	"industrial":  1200.0,
}

// constructionAmortizationYears spreads one-time construction emissions
// over the building's expected life.
const constructionAmortizationYears = 50

var wasteFactors = map[string]float64{
	"landfill":     0.580,
	"recycling":    0.040,
	"composting":   0.010,
	"incineration": 0.210,
}

// Average annual per-capita footprints in tonnes CO2e.
var countryAverages = map[string]float64{
	"global":    4.7,
	"usa":       15.5,
	"canada":    15.5,
	"australia": 15.4,
	"russia":    11.5,
	"japan":     8.7,
	"china":     7.4,
	"uk":        5.5,
	"france":    4.6,
	"italy":     5.4,
	"brazil":    2.3,
	"india":     1.9,
}

// SustainableTarget is the science-based per-capita budget in tonnes
// CO2e for limiting warming to 1.5 degrees.
const SustainableTarget = 2.0
