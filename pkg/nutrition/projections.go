package nutrition

import (
	nuterrors "github.com/nutrilabel/nutrictl/pkg/errors"
)

// Summary returns the product overview: name, total mass, and the serving
// figures when a serving size has been configured.
func (a *Aggregator) Summary() Summary {
	s := Summary{
		ProductName: a.product.Name,
		TotalMass:   a.product.TotalMass,
	}
	if a.product.ServingSize > 0 {
		s.HasServing = true
		s.ServingSize = a.product.ServingSize
		s.NumServings = a.NumServings()
	}
	return s
}

// Ingredients lists every defined ingredient with its used mass, whether or
// not it has been added to the product. Sorted by name for deterministic
// output.
func (a *Aggregator) Ingredients() []IngredientUsage {
	list := make([]IngredientUsage, 0, len(a.ingredients))
	for _, name := range sortedKeys(a.ingredients) {
		ing := a.ingredients[name]
		list = append(list, IngredientUsage{
			Name:        ing.Name,
			DisplayName: ing.DisplayName,
			UsedMass:    a.product.UsedMass[name],
		})
	}
	return list
}

// NutrientTable returns the accumulated totals and, when a serving size is
// set and the package holds at least one serving, the per-serving division.
func (a *Aggregator) NutrientTable() Table {
	t := Table{NumServings: a.NumServings()}
	for _, name := range sortedKeys(a.product.NutrientTotals) {
		t.Totals = append(t.Totals, NutrientAmount{
			Name:   name,
			Amount: a.product.NutrientTotals[name],
		})
	}
	if t.NumServings > 0 {
		for _, row := range t.Totals {
			t.PerServing = append(t.PerServing, NutrientAmount{
				Name:   row.Name,
				Amount: row.Amount / float64(t.NumServings),
			})
		}
	}
	return t
}

// IngredientNutrition reports, for each nutrient of the named ingredient with
// recorded data, the amount contained in the mass actually used in the
// product and the amount in one declared label serving. Ingredients with a
// non-positive label mass yield no rows.
func (a *Aggregator) IngredientNutrition(name string) ([]IngredientNutrient, error) {
	ing := a.ingredients[name]
	if ing == nil {
		return nil, nuterrors.Newf(nuterrors.ErrCodeNotFound, "ingredient %q not defined", name)
	}
	if ing.LabelMass <= 0 {
		return nil, nil
	}
	usedMass := a.product.UsedMass[name]
	rows := make([]IngredientNutrient, 0, len(a.nutrients[name]))
	for _, nutrient := range sortedKeys(a.nutrients[name]) {
		value := a.nutrients[name][nutrient]
		rows = append(rows, IngredientNutrient{
			Name:            nutrient,
			InUsedMass:      value * usedMass / ing.LabelMass,
			PerLabelServing: value * ing.LabelServing / ing.LabelMass,
		})
	}
	return rows, nil
}
