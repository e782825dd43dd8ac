// Package report renders the calculator's read projections as plain text.
// Sections use fixed "=== ... ===" headers; labels and nutrient names are
// left-justified in a 15-character column followed by a colon. Totals carry
// four decimal places (the accumulation precision), derived per-serving and
// per-ingredient figures carry two.
package report

import (
	"fmt"
	"io"

	"github.com/nutrilabel/nutrictl/pkg/nutrition"
)

const nameColumn = "%-15s: "

// errWriter keeps the first write failure so every line of a section is
// error-checked without cluttering the renderers. Once a write fails, the
// remaining lines are skipped.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteSummary renders the product summary section. The serving figures are
// included only when a serving size has been configured.
func WriteSummary(w io.Writer, s nutrition.Summary) error {
	ew := &errWriter{w: w}
	ew.printf("=== Summary ===\n")
	ew.printf(nameColumn+"%s\n", "Product", s.ProductName)
	ew.printf(nameColumn+"%.2f g\n", "Total mass", s.TotalMass)
	if s.HasServing {
		ew.printf(nameColumn+"%.2f g\n", "Serving size", s.ServingSize)
		ew.printf(nameColumn+"%d\n", "Servings", s.NumServings)
	}
	return ew.err
}

// WriteIngredientList renders one line per defined ingredient with the mass
// used in the product (0 if the ingredient was never added).
func WriteIngredientList(w io.Writer, list []nutrition.IngredientUsage) error {
	ew := &errWriter{w: w}
	ew.printf("=== Ingredients ===\n")
	for _, ing := range list {
		ew.printf(nameColumn+"%.2f g\n", ing.DisplayName, ing.UsedMass)
	}
	return ew.err
}

// WriteNutrientTable renders accumulated totals and, when present, the
// per-serving division.
func WriteNutrientTable(w io.Writer, t nutrition.Table) error {
	ew := &errWriter{w: w}
	ew.printf("=== Nutritional Values (total) ===\n")
	for _, row := range t.Totals {
		ew.printf(nameColumn+"%.4f\n", row.Name, row.Amount)
	}
	if len(t.PerServing) > 0 {
		ew.printf("=== Nutritional Values (per serving) ===\n")
		for _, row := range t.PerServing {
			ew.printf(nameColumn+"%.2f\n", row.Name, row.Amount)
		}
	}
	return ew.err
}

// WriteIngredientNutrition renders the per-ingredient view: for each nutrient
// with data, the amount in the used mass and the amount per label serving.
func WriteIngredientNutrition(w io.Writer, displayName string, rows []nutrition.IngredientNutrient) error {
	ew := &errWriter{w: w}
	ew.printf("=== Nutrition: %s ===\n", displayName)
	for _, row := range rows {
		ew.printf(nameColumn+"%.2f used / %.2f per serving\n",
			row.Name, row.InUsedMass, row.PerLabelServing)
	}
	return ew.err
}
