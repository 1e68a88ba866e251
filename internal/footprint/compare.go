package footprint

import "fmt"

// Comparison relates a footprint to a national or global average.
type Comparison struct {
	IndividualTonnes      float64 `json:"individualTonnes"`
	ReferenceTonnes       float64 `json:"referenceTonnes"`
	ReferenceType         string  `json:"referenceType"`
	DifferenceTonnes      float64 `json:"differenceTonnes"`
	PercentageDifference  float64 `json:"percentageDifference"`
	Rating                string  `json:"rating"`
	Description           string  `json:"description"`
	SustainableTarget     float64 `json:"sustainableTarget"`
	SustainableDifference float64 `json:"sustainableDifference"`
}

// CompareToAverage rates a footprint against the named country's
// per-capita average, falling back to the global average for unknown
// countries.
func CompareToAverage(totalTonnes float64, country string) Comparison {
	reference, ok := countryAverages[country]
	if !ok {
		reference = countryAverages["global"]
		country = "global"
	}

	comparison := Comparison{
		IndividualTonnes:      totalTonnes,
		ReferenceTonnes:       reference,
		ReferenceType:         country + " average",
		DifferenceTonnes:      totalTonnes - reference,
		PercentageDifference:  (totalTonnes - reference) / reference * 100,
		SustainableTarget:     SustainableTarget,
		SustainableDifference: totalTonnes - SustainableTarget,
	}

	switch {
	case totalTonnes <= SustainableTarget:
		comparison.Rating = "Sustainable"
		comparison.Description = "Your footprint is within sustainable limits"
	case totalTonnes <= reference*0.5:
		comparison.Rating = "Excellent"
		comparison.Description = fmt.Sprintf("Your footprint is less than half the %s average", country)
	case totalTonnes <= reference*0.8:
		comparison.Rating = "Very Good"
		comparison.Description = fmt.Sprintf("Your footprint is significantly below the %s average", country)
	case totalTonnes <= reference:
		comparison.Rating = "Good"
		comparison.Description = fmt.Sprintf("Your footprint is below the %s average", country)
	case totalTonnes <= reference*1.2:
		comparison.Rating = "Fair"
		comparison.Description = fmt.Sprintf("Your footprint is slightly above the %s average", country)
	case totalTonnes <= reference*1.5:
		comparison.Rating = "Poor"
		comparison.Description = fmt.Sprintf("Your footprint is significantly above the %s average", country)
	default:
		comparison.Rating = "Very Poor"
		comparison.Description = fmt.Sprintf("Your footprint is more than 50%% above the %s average", country)
	}
	return comparison
}
