package nutrition

// Ingredient is a catalog entry describing the reference quantities from an
// ingredient's nutrition label. Nutrient values are declared per LabelMass
// grams; LabelServing is the manufacturer's single-serving mass.
type Ingredient struct {
	Name         string  `json:"name" yaml:"name"`
	DisplayName  string  `json:"displayName" yaml:"displayName"`
	LabelMass    float64 `json:"labelMass" yaml:"labelMass"`
	LabelServing float64 `json:"labelServing" yaml:"labelServing"`
}

// Product is the composite being assembled from ingredients. TotalMass is the
// running sum of all used masses; NutrientTotals holds the accumulated scaled
// nutrient values.
type Product struct {
	Name           string             `json:"name" yaml:"name"`
	TotalMass      float64            `json:"totalMass" yaml:"totalMass"`
	ServingSize    float64            `json:"servingSize,omitempty" yaml:"servingSize,omitempty"`
	UsedMass       map[string]float64 `json:"usedMass" yaml:"usedMass"`
	NutrientTotals map[string]float64 `json:"nutrientTotals" yaml:"nutrientTotals"`
}

// Summary is the product-level overview projection.
type Summary struct {
	ProductName string  `json:"productName" yaml:"productName"`
	TotalMass   float64 `json:"totalMass" yaml:"totalMass"`
	ServingSize float64 `json:"servingSize,omitempty" yaml:"servingSize,omitempty"`
	NumServings int     `json:"numServings,omitempty" yaml:"numServings,omitempty"`
	HasServing  bool    `json:"-" yaml:"-"`
}

// IngredientUsage pairs a defined ingredient with the mass of it incorporated
// into the product (zero if never added).
type IngredientUsage struct {
	Name        string  `json:"name" yaml:"name"`
	DisplayName string  `json:"displayName" yaml:"displayName"`
	UsedMass    float64 `json:"usedMass" yaml:"usedMass"`
}

// NutrientAmount is one row of the nutritional table.
type NutrientAmount struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// Table is the nutritional table projection. PerServing is nil when no valid
// serving size has been configured.
type Table struct {
	Totals      []NutrientAmount `json:"totals" yaml:"totals"`
	PerServing  []NutrientAmount `json:"perServing,omitempty" yaml:"perServing,omitempty"`
	NumServings int              `json:"numServings,omitempty" yaml:"numServings,omitempty"`
}

// IngredientNutrient reports a single nutrient of one ingredient, scaled to
// the mass actually used in the product and to one declared label serving.
type IngredientNutrient struct {
	Name            string  `json:"name" yaml:"name"`
	InUsedMass      float64 `json:"inUsedMass" yaml:"inUsedMass"`
	PerLabelServing float64 `json:"perLabelServing" yaml:"perLabelServing"`
}

// State is the full exportable aggregator state, used by the structured
// output formats.
type State struct {
	Product     Product                       `json:"product" yaml:"product"`
	Ingredients []Ingredient                  `json:"ingredients" yaml:"ingredients"`
	Nutrients   map[string]map[string]float64 `json:"nutrients" yaml:"nutrients"`
}
