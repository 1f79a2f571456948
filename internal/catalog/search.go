package catalog

import (
	"sort"
	"strings"
)

// Ranked pairs an entry with its search score.
type Ranked struct {
	Entry
	Score int
}

// Search ranks catalog entries against a free-text query. The query is
// lowercased and split on whitespace; each term scores independently against
// the code and name, an entry is kept when at least one term matched, and
// entries matched by every term get a bonus. An empty query returns the
// catalog in its original order with zero scores.
func Search(entries []Entry, query string) []Ranked {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		ranked := make([]Ranked, len(entries))
		for i, e := range entries {
			ranked[i] = Ranked{Entry: e}
		}
		return ranked
	}

	var ranked []Ranked
	for _, e := range entries {
		score, matched := scoreEntry(e, terms)
		if matched == 0 {
			continue
		}
		if matched == len(terms) {
			score += 30
		}
		ranked = append(ranked, Ranked{Entry: e, Score: score})
	}

	// Stable keeps catalog order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func scoreEntry(e Entry, terms []string) (score, matched int) {
	code := strings.ToLower(e.Code)
	name := strings.ToLower(e.Name)
	words := strings.Fields(name)

	for _, term := range terms {
		s := termScore(term, code, name, words)
		if s > 0 {
			score += s
			matched++
		}
	}
	return score, matched
}

func termScore(term, code, name string, words []string) int {
	switch {
	case term == code:
		return 100
	case strings.HasPrefix(code, term):
		return 75
	case strings.Contains(code, term):
		return 50
	case strings.HasPrefix(name, term):
		return 25
	case strings.Contains(name, term):
		return 15
	}
	for _, w := range words {
		if strings.HasPrefix(w, term) {
			return 10
		}
	}
	return 0
}
