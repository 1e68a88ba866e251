package footprint

import "sort"

// Recommendation is one reduction action with its estimated saving.
type Recommendation struct {
	Category         string  `json:"category"`
	Action           string  `json:"action"`
	PotentialSavings float64 `json:"potentialSavingsKg"`
	Difficulty       string  `json:"difficulty"`
	Cost             string  `json:"cost"`
}

// Reduction templates per category. Savings fractions are applied to
// the category's computed emissions.
type reductionTemplate struct {
	action     string
	fraction   float64
	difficulty string
	cost       string
}

var reductionTemplates = map[string][]reductionTemplate{
	"electricity": {
		{"Switch to renewable energy provider", 0.85, "Easy", "Low"},
		{"Replace lighting with LED bulbs", 0.05, "Easy", "Low-Medium"},
		{"Install smart thermostats and energy monitors", 0.15, "Medium", "Medium"},
	},
	"transportation": {
		{"Replace car trips under 2km with walking or cycling", 0.05, "Medium", "None"},
		{"Use public transportation instead of driving", 0.3, "Medium", "Low"},
		{"Switch to an electric or hybrid vehicle", 0.6, "Hard", "High"},
		{"Reduce air travel and choose direct flights", 0.2, "Medium", "None"},
	},
	"food": {
		{"Reduce beef consumption by 50%", 0.3, "Medium", "None"},
		{"Adopt a plant-based diet one day per week", 0.15, "Easy", "None"},
		{"Reduce food waste by 50%", 0.1, "Easy", "Negative (saves money)"},
		{"Buy local and seasonal produce", 0.05, "Medium", "Low"},
	},
	"home": {
		{"Improve insulation and seal air leaks", 0.2, "Medium", "Medium-High"},
		{"Install a heat pump instead of gas heating", 0.5, "Hard", "High"},
		{"Install solar panels", 0.4, "Hard", "High"},
		{"Reduce heating by 1-2 degrees C and cooling by 1-2 degrees C", 0.1, "Easy", "None"},
	},
	"products": {
		{"Extend product lifetimes by repairing instead of replacing", 0.2, "Medium", "Negative (saves money)"},
		{"Buy second-hand products when possible", 0.3, "Easy", "Negative (saves money)"},
		{"Invest in high-quality, durable products", 0.15, "Medium", "Medium"},
	},
	"waste": {
		{"Implement comprehensive recycling", 0.3, "Easy", "None"},
		{"Compost organic waste", 0.2, "Medium", "Low"},
		{"Reduce packaging waste with bulk buying", 0.1, "Medium", "None"},
	},
}

// Building categories share the home reduction actions.
var categoryAliases = map[string]string{
	"building_direct":      "home",
	"building_electricity": "home",
}

// RecommendReductions suggests actions for the three highest-emitting
// categories, ordered by potential saving.
func RecommendReductions(categories map[string]float64) []Recommendation {
	type categoryEmission struct {
		name      string
		emissions float64
	}
	ranked := make([]categoryEmission, 0, len(categories))
	for name, emissions := range categories {
		ranked = append(ranked, categoryEmission{name, emissions})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].emissions != ranked[j].emissions {
			return ranked[i].emissions > ranked[j].emissions
		}
		return ranked[i].name < ranked[j].name
	})

	var recommendations []Recommendation
	for i := 0; i < len(ranked) && i < 3; i++ {
		name := ranked[i].name
		if alias, ok := categoryAliases[name]; ok {
			name = alias
		}
		for _, template := range reductionTemplates[name] {
			recommendations = append(recommendations, Recommendation{
				Category:         name,
				Action:           template.action,
				PotentialSavings: template.fraction * ranked[i].emissions,
				Difficulty:       template.difficulty,
				Cost:             template.cost,
			})
		}
	}

	sort.Slice(recommendations, func(i, j int) bool {
		return recommendations[i].PotentialSavings > recommendations[j].PotentialSavings
	})
	return recommendations
}
