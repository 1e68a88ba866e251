package footprint

// IndividualInput is one person's annual consumption profile.
type IndividualInput struct {
	ElectricityKWh      float64                       `json:"electricityKwh,omitempty"`
	ElectricityLocation string                        `json:"electricityLocation,omitempty"`
	Transportation      []TransportActivity           `json:"transportation,omitempty"`
	Food                map[string]float64            `json:"food,omitempty"`
	Products            map[string]map[string]float64 `json:"products,omitempty"`
	Home                *Building                     `json:"home,omitempty"`
}

// Result is a computed footprint: kg CO2e per category with optional
// per-item detail, plus totals.
type Result struct {
	Categories    map[string]float64 `json:"categories"`
	FoodDetail    map[string]float64 `json:"foodDetail,omitempty"`
	ProductDetail map[string]float64 `json:"productDetail,omitempty"`
	HomeDetail    map[string]float64 `json:"homeDetail,omitempty"`
	TotalKg       float64            `json:"totalKg"`
	TotalTonnes   float64            `json:"totalTonnes"`
}

// CalculateIndividual computes a personal annual footprint.
func CalculateIndividual(input IndividualInput) Result {
	result := Result{Categories: make(map[string]float64)}
	total := 0.0

	if input.ElectricityKWh > 0 {
		electricity := ElectricityEmissions(input.ElectricityKWh, input.ElectricityLocation, "")
		result.Categories["electricity"] = electricity
		total += electricity
	}

	if len(input.Transportation) > 0 {
		transport := 0.0
		for _, activity := range input.Transportation {
			transport += TransportEmissions(activity)
		}
		result.Categories["transportation"] = transport
		total += transport
	}

	if len(input.Food) > 0 {
		detail, foodTotal := FoodEmissions(input.Food)
		result.Categories["food"] = foodTotal
		result.FoodDetail = detail
		total += foodTotal
	}

	if len(input.Products) > 0 {
		detail, productTotal := ProductEmissions(input.Products)
		result.Categories["products"] = productTotal
		result.ProductDetail = detail
		total += productTotal
	}

	if input.Home != nil {
		detail, homeTotal := BuildingEmissions(*input.Home)
		result.Categories["home"] = homeTotal
		result.HomeDetail = detail
		total += homeTotal
	}

	result.TotalKg = total
	result.TotalTonnes = total / 1000
	return result
}
