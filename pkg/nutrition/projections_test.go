package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nuterrors "github.com/nutrilabel/nutrictl/pkg/errors"
)

func newOatmealAggregator(t *testing.T) *Aggregator {
	t.Helper()
	a := NewAggregator()
	a.CreateProduct("Overnight Oats")
	a.DefineIngredient("rolled_oats", 100, 40, "")
	a.SetNutrient("rolled_oats", "Calories", 389)
	a.SetNutrient("rolled_oats", "Protein", 16.9)
	a.DefineIngredient("banana", 118, 118, "")
	a.SetNutrient("banana", "Calories", 105)
	require.NoError(t, a.AddIngredient("rolled_oats", 100))
	require.NoError(t, a.AddIngredient("banana", 300))
	require.NoError(t, a.SetServingSize(25))
	return a
}

func TestSummary(t *testing.T) {
	a := newOatmealAggregator(t)
	s := a.Summary()

	assert.Equal(t, "Overnight Oats", s.ProductName)
	assert.Equal(t, 400.0, s.TotalMass)
	assert.True(t, s.HasServing)
	assert.Equal(t, 25.0, s.ServingSize)
	assert.Equal(t, 16, s.NumServings)
}

func TestIngredients_IncludesNeverAdded(t *testing.T) {
	a := newOatmealAggregator(t)
	a.DefineIngredient("chia_seeds", 100, 12, "")

	list := a.Ingredients()
	require.Len(t, list, 3)
	// Sorted by name: banana, chia_seeds, rolled_oats.
	assert.Equal(t, "Banana", list[0].DisplayName)
	assert.Equal(t, 300.0, list[0].UsedMass)
	assert.Equal(t, "Chia Seeds", list[1].DisplayName)
	assert.Equal(t, 0.0, list[1].UsedMass)
}

func TestNutrientTable_PerServingDivision(t *testing.T) {
	a := newOatmealAggregator(t)
	tbl := a.NutrientTable()

	require.Len(t, tbl.Totals, 2)
	assert.Equal(t, "Calories", tbl.Totals[0].Name)
	// 389*100/100 + round4(105*300/118) = 389 + 266.9492
	assert.InDelta(t, 655.9492, tbl.Totals[0].Amount, 0.00005)

	require.Len(t, tbl.PerServing, 2)
	assert.Equal(t, 16, tbl.NumServings)
	assert.InDelta(t, 655.9492/16, tbl.PerServing[0].Amount, 0.00005)
}

func TestNutrientTable_NoServingSizeOmitsPerServing(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("banana", 118, 118, "")
	a.SetNutrient("banana", "Calories", 105)
	require.NoError(t, a.AddIngredient("banana", 118))

	tbl := a.NutrientTable()
	assert.Nil(t, tbl.PerServing)
	assert.Zero(t, tbl.NumServings)
}

func TestIngredientNutrition(t *testing.T) {
	a := newOatmealAggregator(t)
	rows, err := a.IngredientNutrition("rolled_oats")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Calories", rows[0].Name)
	assert.InDelta(t, 389.0, rows[0].InUsedMass, 0.00005)      // 389*100/100
	assert.InDelta(t, 155.6, rows[0].PerLabelServing, 0.00005) // 389*40/100
}

func TestIngredientNutrition_NotAddedUsesZeroMass(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("banana", 118, 118, "")
	a.SetNutrient("banana", "Calories", 105)

	rows, err := a.IngredientNutrition("banana")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].InUsedMass)
	assert.InDelta(t, 105.0, rows[0].PerLabelServing, 0.00005)
}

func TestIngredientNutrition_UndefinedIngredient(t *testing.T) {
	a := NewAggregator()
	_, err := a.IngredientNutrition("ghost")
	require.Error(t, err)
	assert.True(t, nuterrors.HasCode(err, nuterrors.ErrCodeNotFound))
}

func TestIngredientNutrition_ZeroLabelMassYieldsNoRows(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("mystery", 0, 30, "")
	a.SetNutrient("mystery", "Calories", 999)

	rows, err := a.IngredientNutrition("mystery")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestState_Export(t *testing.T) {
	a := newOatmealAggregator(t)
	st := a.State()

	assert.Equal(t, "Overnight Oats", st.Product.Name)
	require.Len(t, st.Ingredients, 2)
	assert.Equal(t, "banana", st.Ingredients[0].Name)
	assert.InDelta(t, 105.0, st.Nutrients["banana"]["Calories"], 0.00005)
}
