package nutrition

import (
	"log/slog"
	"maps"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	nuterrors "github.com/nutrilabel/nutrictl/pkg/errors"
)

// Aggregator owns the ingredient catalog and the product record for one
// calculation session. It accumulates scaled nutrient values eagerly at
// add-time: nutrient values set on an ingredient after it has been added to
// the product are not retroactively reflected in the totals.
//
// The Aggregator is not safe for concurrent use; a session is a single
// logical thread of control.
type Aggregator struct {
	ingredients map[string]*Ingredient
	// nutrients maps ingredient name to that ingredient's nutrient table
	// (value per label mass). It is kept separate from the catalog so that
	// values survive an ingredient redefinition, and so values can be parked
	// against names that are defined later.
	nutrients map[string]map[string]float64
	product   Product
	added     map[string]bool
}

// NewAggregator returns an empty aggregator with an unnamed product.
func NewAggregator() *Aggregator {
	return &Aggregator{
		ingredients: make(map[string]*Ingredient),
		nutrients:   make(map[string]map[string]float64),
		product: Product{
			UsedMass:       make(map[string]float64),
			NutrientTotals: make(map[string]float64),
		},
		added: make(map[string]bool),
	}
}

// DefineIngredient registers an ingredient, replacing any prior definition of
// the same name. An empty displayName derives one from the name by replacing
// underscores with spaces and title-casing each word. Mass positivity is not
// validated here; a non-positive label mass simply disables nutrient scaling
// for this ingredient at add-time.
func (a *Aggregator) DefineIngredient(name string, labelMass, labelServing float64, displayName string) {
	if displayName == "" {
		displayName = defaultDisplayName(name)
	}
	a.ingredients[name] = &Ingredient{
		Name:         name,
		DisplayName:  displayName,
		LabelMass:    labelMass,
		LabelServing: labelServing,
	}
	ingredientsDefined.Inc()
}

// SetNutrient records value as the amount of the nutrient per label mass of
// the ingredient. The ingredient does not have to be defined yet; the value
// is parked against the name and takes effect only if the ingredient is later
// defined and added.
func (a *Aggregator) SetNutrient(ingredient, nutrient string, value float64) {
	table := a.nutrients[ingredient]
	if table == nil {
		table = make(map[string]float64)
		a.nutrients[ingredient] = table
	}
	table[nutrient] = value
}

// ClearNutrient marks a nutrient as having no data for the ingredient. An
// absent value is skipped during scaling; it is never treated as zero.
func (a *Aggregator) ClearNutrient(ingredient, nutrient string) {
	delete(a.nutrients[ingredient], nutrient)
}

// CreateProduct sets the product's display name. Totals and used masses are
// deliberately kept: renaming the product mid-session does not reset it.
func (a *Aggregator) CreateProduct(name string) {
	a.product.Name = name
}

// AddIngredient incorporates usedMass grams of the named ingredient into the
// product. The used mass always counts toward the product's total mass, even
// for an ingredient that was never defined. Nutrient totals only accumulate
// when the ingredient is defined with a positive label mass; each nutrient
// with a recorded value contributes value*usedMass/labelMass, rounded to four
// decimal places.
//
// Adding the same ingredient twice is rejected: silently double-counting the
// mass while overwriting the used-mass entry would leave the product record
// inconsistent.
func (a *Aggregator) AddIngredient(name string, usedMass float64) error {
	if a.added[name] {
		return nuterrors.Newf(nuterrors.ErrCodeInvalidConfiguration,
			"ingredient %q already added to product", name)
	}
	a.added[name] = true
	a.product.UsedMass[name] = usedMass
	a.product.TotalMass += usedMass

	ing := a.ingredients[name]
	if ing == nil {
		slog.Warn("adding undefined ingredient, mass counted but no nutrients",
			slog.String("ingredient", name), slog.Float64("used_mass", usedMass))
		productAddsTotal.WithLabelValues("undefined").Inc()
		return nil
	}
	if ing.LabelMass <= 0 {
		slog.Warn("ingredient has non-positive label mass, nutrient scaling skipped",
			slog.String("ingredient", name), slog.Float64("label_mass", ing.LabelMass))
		scalingSkippedTotal.WithLabelValues("no_label_mass").Inc()
		productAddsTotal.WithLabelValues("accepted").Inc()
		return nil
	}

	for nutrient, value := range a.nutrients[name] {
		scaled := round4(value * usedMass / ing.LabelMass)
		a.product.NutrientTotals[nutrient] += scaled
	}
	productAddsTotal.WithLabelValues("accepted").Inc()
	return nil
}

// SetServingSize configures the product serving size in grams. Zero or
// negative values are rejected so that per-serving derivations never divide
// by zero.
func (a *Aggregator) SetServingSize(grams float64) error {
	if grams <= 0 {
		return nuterrors.Newf(nuterrors.ErrCodeInvalidConfiguration,
			"serving size must be positive, got %v", grams)
	}
	a.product.ServingSize = grams
	return nil
}

// NumServings derives the servings-per-package count, rounded half away from
// zero. It is zero until a serving size has been set.
func (a *Aggregator) NumServings() int {
	if a.product.ServingSize <= 0 {
		return 0
	}
	return int(math.Round(a.product.TotalMass / a.product.ServingSize))
}

// Ingredient returns the definition for name, or nil if it was never defined.
func (a *Aggregator) Ingredient(name string) *Ingredient {
	return a.ingredients[name]
}

// Product returns a snapshot of the current product record. The used-mass and
// nutrient-total maps are copied, so mutating the snapshot does not reach back
// into the aggregator.
func (a *Aggregator) Product() Product {
	p := a.product
	p.UsedMass = maps.Clone(a.product.UsedMass)
	p.NutrientTotals = maps.Clone(a.product.NutrientTotals)
	return p
}

// State exports the full aggregator state for structured serialization.
func (a *Aggregator) State() State {
	st := State{
		Product:   a.Product(),
		Nutrients: a.nutrients,
	}
	for _, name := range sortedKeys(a.ingredients) {
		st.Ingredients = append(st.Ingredients, *a.ingredients[name])
	}
	return st
}

func defaultDisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// round4 rounds to four decimal places, the precision nutrient contributions
// are accumulated at.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
