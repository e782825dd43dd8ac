package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nuterrors "github.com/nutrilabel/nutrictl/pkg/errors"
)

func TestAddIngredient_ProportionalScaling(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("banana", 118, 118, "")
	a.SetNutrient("banana", "Calories", 105)
	a.SetNutrient("banana", "Carbohydrates", 27)

	require.NoError(t, a.AddIngredient("banana", 300))

	p := a.Product()
	assert.InDelta(t, 266.9492, p.NutrientTotals["Calories"], 0.00005)
	assert.InDelta(t, 68.6441, p.NutrientTotals["Carbohydrates"], 0.00005)
	assert.Equal(t, 300.0, p.TotalMass)
}

func TestProduct_SnapshotDoesNotAliasInternalState(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("banana", 118, 118, "")
	a.SetNutrient("banana", "Calories", 105)
	require.NoError(t, a.AddIngredient("banana", 300))

	p := a.Product()
	p.NutrientTotals["Calories"] = 0
	p.UsedMass["banana"] = 0
	delete(p.NutrientTotals, "Calories")

	fresh := a.Product()
	assert.InDelta(t, 266.9492, fresh.NutrientTotals["Calories"], 0.00005)
	assert.Equal(t, 300.0, fresh.UsedMass["banana"])
}

func TestAddIngredient_AccumulationIsCommutative(t *testing.T) {
	build := func(order []string) map[string]float64 {
		a := NewAggregator()
		a.DefineIngredient("oats", 100, 40, "")
		a.SetNutrient("oats", "Protein", 13.5)
		a.DefineIngredient("milk", 250, 250, "")
		a.SetNutrient("milk", "Protein", 8.2)
		for _, name := range order {
			require.NoError(t, a.AddIngredient(name, 120))
		}
		return a.Product().NutrientTotals
	}

	forward := build([]string{"oats", "milk"})
	reverse := build([]string{"milk", "oats"})

	assert.InDelta(t, forward["Protein"], reverse["Protein"], 0.00005)
	// 13.5*120/100 + 8.2*120/250
	assert.InDelta(t, 16.2+3.936, forward["Protein"], 0.00005)
}

func TestAddIngredient_ZeroLabelMassContributesMassOnly(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("mystery", 0, 30, "")
	a.SetNutrient("mystery", "Calories", 999)

	require.NoError(t, a.AddIngredient("mystery", 50))

	p := a.Product()
	assert.Empty(t, p.NutrientTotals)
	assert.Equal(t, 50.0, p.TotalMass)
}

func TestAddIngredient_UndefinedIngredientContributesMassOnly(t *testing.T) {
	a := NewAggregator()
	require.NoError(t, a.AddIngredient("ghost", 75))

	p := a.Product()
	assert.Empty(t, p.NutrientTotals)
	assert.Equal(t, 75.0, p.TotalMass)
	assert.Equal(t, 75.0, p.UsedMass["ghost"])
}

func TestAddIngredient_MissingNutrientIsSkippedNotZeroed(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("banana", 118, 118, "")
	a.SetNutrient("banana", "Calories", 105)
	a.DefineIngredient("water", 100, 250, "")
	// water never declares Calories

	require.NoError(t, a.AddIngredient("banana", 118))
	require.NoError(t, a.AddIngredient("water", 500))

	p := a.Product()
	assert.InDelta(t, 105, p.NutrientTotals["Calories"], 0.00005)
}

func TestClearNutrient_RemovesData(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("banana", 118, 118, "")
	a.SetNutrient("banana", "Calories", 105)
	a.ClearNutrient("banana", "Calories")

	require.NoError(t, a.AddIngredient("banana", 300))

	_, ok := a.Product().NutrientTotals["Calories"]
	assert.False(t, ok, "cleared nutrient must not contribute, not even zero")
}

func TestAddIngredient_DuplicateRejected(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("oats", 100, 40, "")
	require.NoError(t, a.AddIngredient("oats", 50))

	err := a.AddIngredient("oats", 50)
	require.Error(t, err)
	assert.True(t, nuterrors.HasCode(err, nuterrors.ErrCodeInvalidConfiguration))
	assert.Equal(t, 50.0, a.Product().TotalMass, "rejected add must not change total mass")
}

func TestSetNutrient_AfterAddIsNotRetroactive(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("oats", 100, 40, "")
	require.NoError(t, a.AddIngredient("oats", 100))

	a.SetNutrient("oats", "Fiber", 10)

	_, ok := a.Product().NutrientTotals["Fiber"]
	assert.False(t, ok, "accumulation is eager at add-time")
}

func TestSetServingSize(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("oats", 100, 40, "")
	require.NoError(t, a.AddIngredient("oats", 400))

	require.NoError(t, a.SetServingSize(25))
	assert.Equal(t, 16, a.NumServings())

	err := a.SetServingSize(0)
	require.Error(t, err)
	assert.True(t, nuterrors.HasCode(err, nuterrors.ErrCodeInvalidConfiguration))
}

func TestNumServings_ZeroUntilConfigured(t *testing.T) {
	a := NewAggregator()
	assert.Equal(t, 0, a.NumServings())
}

func TestDefineIngredient_DisplayNameDefaulting(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		want        string
	}{
		{"rolled_oats", "", "Rolled Oats"},
		{"banana", "", "Banana"},
		{"peanut_butter_smooth", "", "Peanut Butter Smooth"},
		{"oats", "Steel-Cut Oats", "Steel-Cut Oats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAggregator()
			a.DefineIngredient(tt.name, 100, 40, tt.displayName)
			assert.Equal(t, tt.want, a.Ingredient(tt.name).DisplayName)
		})
	}
}

func TestDefineIngredient_RedefineKeepsNutrients(t *testing.T) {
	a := NewAggregator()
	a.DefineIngredient("oats", 50, 40, "")
	a.SetNutrient("oats", "Protein", 6.75)
	a.DefineIngredient("oats", 100, 40, "")

	require.NoError(t, a.AddIngredient("oats", 200))
	assert.InDelta(t, 13.5, a.Product().NutrientTotals["Protein"], 0.00005)
}

func TestSetNutrient_ParkedUntilDefined(t *testing.T) {
	a := NewAggregator()
	a.SetNutrient("future", "Calories", 100)
	a.DefineIngredient("future", 100, 100, "")

	require.NoError(t, a.AddIngredient("future", 50))
	assert.InDelta(t, 50, a.Product().NutrientTotals["Calories"], 0.00005)
}

func TestCreateProduct_RenameKeepsTotals(t *testing.T) {
	a := NewAggregator()
	a.CreateProduct("Draft")
	a.DefineIngredient("oats", 100, 40, "")
	require.NoError(t, a.AddIngredient("oats", 100))

	a.CreateProduct("Final")

	p := a.Product()
	assert.Equal(t, "Final", p.Name)
	assert.Equal(t, 100.0, p.TotalMass)
}
