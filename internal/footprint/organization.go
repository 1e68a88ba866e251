package footprint

// DefaultWorkingDays is assumed for commute patterns that omit a count.
const DefaultWorkingDays = 220

// CommutePattern describes one group of employees' daily commute.
type CommutePattern struct {
	Mode        string  `json:"mode"`
	DistanceKm  float64 `json:"distanceKm"` // one way
	DaysPerYear int     `json:"daysPerYear,omitempty"`
	Employees   int     `json:"employees,omitempty"`
	Passengers  int     `json:"passengers,omitempty"`
	Location    string  `json:"location,omitempty"`
}

// OrganizationTransport groups an organization's transport activity by
// emission scope: fleet is scope 1, the rest is scope 3.
type OrganizationTransport struct {
	Fleet           []TransportActivity `json:"fleet,omitempty"`
	EmployeeCommute []CommutePattern    `json:"employeeCommute,omitempty"`
	BusinessTravel  []TransportActivity `json:"businessTravel,omitempty"`
	Shipping        []TransportActivity `json:"shipping,omitempty"`
}

// OrganizationInput is an organization's annual activity profile.
type OrganizationInput struct {
	ElectricityKWh      float64                       `json:"electricityKwh,omitempty"`
	ElectricityLocation string                        `json:"electricityLocation,omitempty"`
	Transportation      OrganizationTransport         `json:"transportation"`
	Buildings           []Building                    `json:"buildings,omitempty"`
	Products            map[string]map[string]float64 `json:"products,omitempty"`
	Waste               map[string]float64            `json:"waste,omitempty"`
}

// Scopes splits a footprint along the GHG Protocol boundaries: scope 1
// direct emissions, scope 2 purchased energy, scope 3 everything else.
type Scopes struct {
	Scope1 float64 `json:"scope1"`
	Scope2 float64 `json:"scope2"`
	Scope3 float64 `json:"scope3"`
}

// OrganizationResult is a computed organization footprint.
type OrganizationResult struct {
	Categories    map[string]float64 `json:"categories"`
	Scopes        Scopes             `json:"scopes"`
	ProductDetail map[string]float64 `json:"productDetail,omitempty"`
	TotalKg       float64            `json:"totalKg"`
	TotalTonnes   float64            `json:"totalTonnes"`
}

// CalculateOrganization computes an organization's annual footprint
// broken out by category and GHG Protocol scope.
func CalculateOrganization(input OrganizationInput) OrganizationResult {
	result := OrganizationResult{Categories: make(map[string]float64)}

	// Scope 1: company fleet and fuels burned on site.
	if len(input.Transportation.Fleet) > 0 {
		fleet := 0.0
		for _, activity := range input.Transportation.Fleet {
			fleet += TransportEmissions(activity)
		}
		result.Categories["fleet"] = fleet
		result.Scopes.Scope1 += fleet
	}

	if len(input.Buildings) > 0 {
		direct := 0.0
		for _, building := range input.Buildings {
			if directHeatingFuels[building.HeatingType] && building.HeatingEnergyKWh > 0 {
				direct += building.HeatingEnergyKWh * heatingFactors[building.HeatingType]
			}
		}
		result.Categories["building_direct"] = direct
		result.Scopes.Scope1 += direct
	}

	// Scope 2: purchased electricity.
	if input.ElectricityKWh > 0 {
		electricity := ElectricityEmissions(input.ElectricityKWh, input.ElectricityLocation, "")
		result.Categories["electricity"] = electricity
		result.Scopes.Scope2 += electricity
	} else if len(input.Buildings) > 0 {
		indirect := 0.0
		for _, building := range input.Buildings {
			if building.ElectricityKWh > 0 {
				indirect += ElectricityEmissions(building.ElectricityKWh, building.Location, "")
			}
		}
		result.Categories["building_electricity"] = indirect
		result.Scopes.Scope2 += indirect
	}

	// Scope 3: commuting, travel, shipping, purchased goods, waste.
	if len(input.Transportation.EmployeeCommute) > 0 {
		commute := 0.0
		for _, pattern := range input.Transportation.EmployeeCommute {
			days := pattern.DaysPerYear
			if days <= 0 {
				days = DefaultWorkingDays
			}
			employees := pattern.Employees
			if employees < 1 {
				employees = 1
			}
			perDay := TransportEmissions(TransportActivity{
				Mode:       pattern.Mode,
				DistanceKm: pattern.DistanceKm * 2, // round trip
				Passengers: pattern.Passengers,
				Location:   pattern.Location,
			})
			commute += perDay * float64(days) * float64(employees)
		}
		result.Categories["employee_commute"] = commute
		result.Scopes.Scope3 += commute
	}

	if len(input.Transportation.BusinessTravel) > 0 {
		travel := 0.0
		for _, trip := range input.Transportation.BusinessTravel {
			travel += TransportEmissions(trip)
		}
		result.Categories["business_travel"] = travel
		result.Scopes.Scope3 += travel
	}

	if len(input.Transportation.Shipping) > 0 {
		shipping := 0.0
		for _, shipment := range input.Transportation.Shipping {
			shipping += TransportEmissions(shipment)
		}
		result.Categories["shipping"] = shipping
		result.Scopes.Scope3 += shipping
	}

	if len(input.Products) > 0 {
		detail, productTotal := ProductEmissions(input.Products)
		result.Categories["products"] = productTotal
		result.ProductDetail = detail
		result.Scopes.Scope3 += productTotal
	}

	if len(input.Waste) > 0 {
		waste := WasteEmissions(input.Waste)
		result.Categories["waste"] = waste
		result.Scopes.Scope3 += waste
	}

	result.TotalKg = result.Scopes.Scope1 + result.Scopes.Scope2 + result.Scopes.Scope3
	result.TotalTonnes = result.TotalKg / 1000
	return result
}
