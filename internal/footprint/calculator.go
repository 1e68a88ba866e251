// Package footprint computes carbon footprints for individuals and
// organizations from published emission factors, compares totals to
// national averages and suggests the highest-impact reductions.
package footprint

// TransportActivity is one recurring journey or shipment.
type TransportActivity struct {
	Mode         string  `json:"mode"`
	DistanceKm   float64 `json:"distanceKm"`
	Passengers   int     `json:"passengers,omitempty"`
	WeightTonnes float64 `json:"weightTonnes,omitempty"`
	Location     string  `json:"location,omitempty"`
}

// Building describes one building's annual resource use.
type Building struct {
	AreaSqm          float64 `json:"areaSqm,omitempty"`
	Type             string  `json:"type,omitempty"` // residential, commercial, industrial
	HeatingType      string  `json:"heatingType,omitempty"`
	HeatingEnergyKWh float64 `json:"heatingEnergyKwh,omitempty"`
	ElectricityKWh   float64 `json:"electricityKwh,omitempty"`
	WaterSupplyM3    float64 `json:"waterSupplyM3,omitempty"`
	WaterTreatmentM3 float64 `json:"waterTreatmentM3,omitempty"`
	Location         string  `json:"location,omitempty"`
}

// ElectricityEmissions computes kg CO2e for consumed electricity. A
// known generation source overrides the location's grid factor;
// unrecognized locations use the global average.
func ElectricityEmissions(kwh float64, location, source string) float64 {
	if factor, ok := electricitySourceFactors[source]; ok && source != "" {
		return kwh * factor
	}
	if factor, ok := electricityCountryFactors[location]; ok {
		return kwh * factor
	}
	return kwh * electricityCountryFactors[GlobalAverageLocation]
}

// TransportEmissions computes kg CO2e for one activity. Passenger
// modes split emissions across occupants; freight modes scale by cargo
// weight. Unknown modes contribute nothing.
func TransportEmissions(activity TransportActivity) float64 {
	passengers := activity.Passengers
	if passengers < 1 {
		passengers = 1
	}

	if activity.Mode == "car_electric" {
		factor, ok := electricCarFactors[activity.Location]
		if !ok {
			factor = electricCarFactors[GlobalAverageLocation]
		}
		return activity.DistanceKm * factor / float64(passengers)
	}
	if factor, ok := passengerFactors[activity.Mode]; ok {
		return activity.DistanceKm * factor / float64(passengers)
	}
	if factor, ok := freightFactors[activity.Mode]; ok && activity.WeightTonnes > 0 {
		return activity.DistanceKm * activity.WeightTonnes * factor
	}
	return 0
}

// FoodEmissions computes kg CO2e per food type from annual consumption
// in kg. Unknown food types are ignored.
func FoodEmissions(consumption map[string]float64) (map[string]float64, float64) {
	breakdown := make(map[string]float64)
	total := 0.0
	for foodType, amount := range consumption {
		factor, ok := foodFactors[foodType]
		if !ok {
			continue
		}
		emission := amount * factor
		breakdown[foodType] = emission
		total += emission
	}
	return breakdown, total
}

// ProductEmissions computes kg CO2e per product category from purchase
// quantities, keyed category -> product type -> quantity.
func ProductEmissions(purchases map[string]map[string]float64) (map[string]float64, float64) {
	breakdown := make(map[string]float64)
	total := 0.0
	for category, products := range purchases {
		factors, ok := productFactors[category]
		if !ok {
			continue
		}
		categoryTotal := 0.0
		for productType, quantity := range products {
			if factor, ok := factors[productType]; ok {
				categoryTotal += quantity * factor
			}
		}
		breakdown[category] = categoryTotal
		total += categoryTotal
	}
	return breakdown, total
}

// BuildingEmissions computes kg CO2e for one building: amortized
// construction, heating, electricity, and water supply and treatment.
func BuildingEmissions(building Building) (map[string]float64, float64) {
	breakdown := make(map[string]float64)
	total := 0.0

	if building.AreaSqm > 0 {
		if factor, ok := constructionFactors[building.Type]; ok {
			construction := building.AreaSqm * factor / constructionAmortizationYears
			breakdown["construction"] = construction
			total += construction
		}
	}
	if building.HeatingEnergyKWh > 0 {
		if factor, ok := heatingFactors[building.HeatingType]; ok {
			heating := building.HeatingEnergyKWh * factor
			breakdown["heating"] = heating
			total += heating
		}
	}
	if building.ElectricityKWh > 0 {
		electricity := ElectricityEmissions(building.ElectricityKWh, building.Location, "")
		breakdown["electricity"] = electricity
		total += electricity
	}
	if building.WaterSupplyM3 > 0 {
		supply := building.WaterSupplyM3 * waterSupplyFactor
		breakdown["water_supply"] = supply
		total += supply
	}
	if building.WaterTreatmentM3 > 0 {
		treatment := building.WaterTreatmentM3 * waterTreatmentFactor
		breakdown["water_treatment"] = treatment
		total += treatment
	}
	return breakdown, total
}

// WasteEmissions computes kg CO2e from annual waste in kg, keyed by
// disposal route.
func WasteEmissions(waste map[string]float64) float64 {
	total := 0.0
	for route, amount := range waste {
		if factor, ok := wasteFactors[route]; ok {
			total += amount * factor
		}
	}
	return total
}
