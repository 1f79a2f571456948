package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/factor-cli/internal/model"
)

func TestNormalizeResponse_CanonicalMatch(t *testing.T) {
	raw := `{"matches":[{"EmissionFactorCode":"111110","EmissionFactorName":"Soybean Farming"}]}`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, "111110", labels[0].EmissionFactorCode)
	assert.Equal(t, "Soybean Farming", labels[0].EmissionFactorName)
}

func TestNormalizeResponse_AliasKeys(t *testing.T) {
	raw := `{"matches":[{"code":"111110","name":"Soybean Farming"}]}`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, "111110", labels[0].EmissionFactorCode)
	assert.Equal(t, "Soybean Farming", labels[0].EmissionFactorName)
}

func TestNormalizeResponse_FactorCodeAlias(t *testing.T) {
	raw := `{"matches":[{"factorCode":"562111","factorName":"Solid Waste Collection"}]}`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, "562111", labels[0].EmissionFactorCode)
	assert.Equal(t, "Solid Waste Collection", labels[0].EmissionFactorName)
}

func TestNormalizeResponse_ResultsField(t *testing.T) {
	raw := `{"results":[{"code":"561720","name":"Janitorial Services"}]}`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, "561720", labels[0].EmissionFactorCode)
}

func TestNormalizeResponse_TopLevelArray(t *testing.T) {
	raw := `[{"code":"561720","name":"Janitorial Services"}]`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, "561720", labels[0].EmissionFactorCode)
}

func TestNormalizeResponse_FirstNonEmptyArrayField(t *testing.T) {
	raw := `{"note":"here you go","classifications":[{"code":"111110","name":"Soybean Farming"}]}`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, "111110", labels[0].EmissionFactorCode)
}

func TestNormalizeResponse_EmptyMatchesFails(t *testing.T) {
	_, err := NormalizeResponse(`{"matches":[]}`, 1)
	assert.ErrorIs(t, err, ErrEmptyMatches)
}

func TestNormalizeResponse_NoArrayFails(t *testing.T) {
	_, err := NormalizeResponse(`{"answer":"none"}`, 1)
	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestNormalizeResponse_ScalarFails(t *testing.T) {
	_, err := NormalizeResponse(`"just a string"`, 1)
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestNormalizeResponse_GarbageFails(t *testing.T) {
	_, err := NormalizeResponse(`I'm sorry, I can't do that`, 1)
	assert.ErrorIs(t, err, ErrNotJSON)
}

func TestNormalizeResponse_PadsShortArray(t *testing.T) {
	raw := `{"matches":[{"EmissionFactorCode":"111110","EmissionFactorName":"Soybean Farming"}]}`
	labels, err := NormalizeResponse(raw, 3)
	require.NoError(t, err)
	require.Len(t, labels, 3)
	assert.Equal(t, "111110", labels[0].EmissionFactorCode)
	assert.Equal(t, model.MissingLabel(), labels[1])
	assert.Equal(t, model.MissingLabel(), labels[2])
}

func TestNormalizeResponse_TruncatesLongArray(t *testing.T) {
	raw := `{"matches":[
		{"code":"1","name":"a"},
		{"code":"2","name":"b"},
		{"code":"3","name":"c"}
	]}`
	labels, err := NormalizeResponse(raw, 2)
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "1", labels[0].EmissionFactorCode)
	assert.Equal(t, "2", labels[1].EmissionFactorCode)
}

func TestNormalizeResponse_UnknownSentinelsForBadElement(t *testing.T) {
	raw := `{"matches":[{"confidence":0.9}]}`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, model.UnknownLabel(), labels[0])
}

func TestNormalizeResponse_NonObjectElement(t *testing.T) {
	raw := `{"matches":["111110"]}`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, model.UnknownLabel(), labels[0])
}

func TestNormalizeResponse_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"matches\":[{\"code\":\"111110\",\"name\":\"Soybean Farming\"}]}\n```"
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, "111110", labels[0].EmissionFactorCode)
}

func TestNormalizeResponse_Preamble(t *testing.T) {
	raw := "Here are the classifications:\n{\"matches\":[{\"code\":\"111110\",\"name\":\"Soybean Farming\"}]}"
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, "111110", labels[0].EmissionFactorCode)
}

func TestNormalizeResponse_RepairsTrailingComma(t *testing.T) {
	raw := `{"matches":[{"code":"111110","name":"Soybean Farming"},]}`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, "111110", labels[0].EmissionFactorCode)
}

func TestNormalizeResponse_EmptyStringFieldFallsBack(t *testing.T) {
	raw := `{"matches":[{"code":"","name":"Soybean Farming"}]}`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, model.CodeUnknown, labels[0].EmissionFactorCode)
	assert.Equal(t, "Soybean Farming", labels[0].EmissionFactorName)
}

func TestNormalizeResponse_CanonicalKeyWinsOverAlias(t *testing.T) {
	raw := `{"matches":[{"code":"999999","EmissionFactorCode":"111110","name":"Soybean Farming"}]}`
	labels, err := NormalizeResponse(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, "111110", labels[0].EmissionFactorCode)
}
