package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var searchCatalog = []Entry{
	{Code: "111110", Name: "Soybean Farming"},
	{Code: "561720", Name: "Janitorial Services"},
	{Code: "561730", Name: "Landscaping Services"},
	{Code: "722511", Name: "Full-Service Restaurants"},
}

func TestSearch_EmptyQueryReturnsCatalogUnchanged(t *testing.T) {
	ranked := Search(searchCatalog, "")
	require.Len(t, ranked, len(searchCatalog))
	for i, r := range ranked {
		assert.Equal(t, searchCatalog[i], r.Entry)
		assert.Zero(t, r.Score)
	}
}

func TestSearch_ExactCodeMatch(t *testing.T) {
	ranked := Search(searchCatalog, "561720")
	require.NotEmpty(t, ranked)
	assert.Equal(t, "561720", ranked[0].Code)
	assert.Equal(t, 130, ranked[0].Score) // 100 exact + 30 full coverage
}

func TestSearch_CodePrefixRanksAboveNonMatch(t *testing.T) {
	ranked := Search(searchCatalog, "561")
	require.Len(t, ranked, 2)
	assert.Equal(t, "561720", ranked[0].Code)
	assert.Equal(t, "561730", ranked[1].Code)
	assert.Equal(t, 105, ranked[0].Score) // 75 prefix + 30 full coverage
}

func TestSearch_NonMatchingEntriesExcluded(t *testing.T) {
	ranked := Search(searchCatalog, "soybean")
	require.Len(t, ranked, 1)
	assert.Equal(t, "111110", ranked[0].Code)
}

func TestSearch_NamePrefixBeatsSubstring(t *testing.T) {
	ranked := Search(searchCatalog, "janitorial")
	require.Len(t, ranked, 1)
	assert.Equal(t, 55, ranked[0].Score) // 25 name prefix + 30 full coverage

	ranked = Search(searchCatalog, "services")
	require.Len(t, ranked, 2)
	for _, r := range ranked {
		assert.Equal(t, 45, r.Score) // 15 name substring + 30 full coverage
	}
}

func TestSearch_TwoTermFullCoverageBeatsPartial(t *testing.T) {
	ranked := Search(searchCatalog, "janitorial services")
	require.NotEmpty(t, ranked)
	assert.Equal(t, "561720", ranked[0].Code)
	// Both terms match 561720 (25+15+30); only one matches 561730 (15).
	assert.Equal(t, 70, ranked[0].Score)
	require.Len(t, ranked, 2)
	assert.Equal(t, "561730", ranked[1].Code)
	assert.Equal(t, 15, ranked[1].Score)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	upper := Search(searchCatalog, "JANITORIAL")
	lower := Search(searchCatalog, "janitorial")
	assert.Equal(t, lower, upper)
}

func TestSearch_TiesKeepCatalogOrder(t *testing.T) {
	ranked := Search(searchCatalog, "services")
	require.Len(t, ranked, 2)
	assert.Equal(t, "561720", ranked[0].Code)
	assert.Equal(t, "561730", ranked[1].Code)
}
