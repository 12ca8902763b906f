// Package search ranks raw ticker-search suggestions by relevance to the
// query the user typed.
package search

import (
	"sort"
	"strings"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

// Relevance buckets, ascending by rank. Items in the same bucket keep
// their original relative order.
const (
	rankExact = iota
	rankPrefix
	rankContains
	rankOther
)

// Rank orders suggestions by how well their symbol matches the query:
// exact match first, then prefix matches, then substring matches, then
// everything else in original order. All comparisons are
// case-insensitive and the sort is stable, so identical input always
// produces identical output.
//
// An empty query or empty result set yields an empty slice. The input is
// never mutated.
func Rank(results []models.SuggestionItem, query string) []models.SuggestionItem {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" || len(results) == 0 {
		return []models.SuggestionItem{}
	}

	out := append([]models.SuggestionItem(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		return relevance(out[i].Symbol, q) < relevance(out[j].Symbol, q)
	})
	return out
}

func relevance(symbol, query string) int {
	s := strings.ToUpper(symbol)
	switch {
	case s == query:
		return rankExact
	case strings.HasPrefix(s, query):
		return rankPrefix
	case strings.Contains(s, query):
		return rankContains
	default:
		return rankOther
	}
}
