package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExample_WritesSampleReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_report.txt")
	require.NoError(t, RunExample(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "=== Summary ===")
	assert.Contains(t, text, "Product        : Overnight Oats")
	assert.Contains(t, text, "=== Nutritional Values (total) ===")
	assert.Contains(t, text, "=== Nutrition: Banana ===")
	// 100+118+200 grams across three ingredients
	assert.Contains(t, text, "Total mass     : 418.00 g")
}
