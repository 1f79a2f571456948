package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/factor-cli/internal/model"
)

func TestBuildSystemPrompt_RequestsJSONObject(t *testing.T) {
	sys := BuildSystemPrompt()
	assert.Contains(t, sys, `"matches"`)
	assert.Contains(t, sys, "EmissionFactorCode")
	assert.Contains(t, sys, "one match per input row")
}

func TestBuildUserPrompt_IncludesColumnsAndRows(t *testing.T) {
	batch := model.Batch{
		Number: 1,
		Rows: []model.Row{
			{"Supplier": "Acme Janitorial", "Amount": 120.5},
			{"Supplier": "Green Beans Co", "Amount": 42},
		},
	}
	headers := []string{"Supplier", "Amount"}
	descs := map[string]string{
		"Supplier": "vendor the purchase was made from",
		"Amount":   "spend in USD",
	}

	prompt, err := BuildUserPrompt(headers, descs, batch, nil)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Supplier: vendor the purchase was made from")
	assert.Contains(t, prompt, "Amount: spend in USD")
	assert.Contains(t, prompt, "Acme Janitorial")
	assert.Contains(t, prompt, "Classify these 2 rows")
	assert.Contains(t, prompt, "Return exactly 2 matches")
	assert.NotContains(t, prompt, "Examples of correct classifications")
}

func TestBuildUserPrompt_IncludesExamples(t *testing.T) {
	batch := model.Batch{Number: 1, Rows: makeRows(1)}
	examples := []model.ExampleMatch{
		{
			RowData:            "Supplier: Soy Supply Inc",
			EmissionFactorCode: "111110",
			EmissionFactorName: "Soybean Farming",
		},
	}

	prompt, err := BuildUserPrompt([]string{"id"}, map[string]string{"id": "identifier"}, batch, examples)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Examples of correct classifications")
	assert.Contains(t, prompt, "Soy Supply Inc")
	assert.Contains(t, prompt, `"111110"`)
}

func TestBuildUserPrompt_Deterministic(t *testing.T) {
	batch := model.Batch{Number: 1, Rows: []model.Row{{"a": "1", "b": "2"}}}
	headers := []string{"a", "b"}
	descs := map[string]string{"a": "first", "b": "second"}

	p1, err := BuildUserPrompt(headers, descs, batch, nil)
	require.NoError(t, err)
	p2, err := BuildUserPrompt(headers, descs, batch, nil)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}
