package internal

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// FindSimilarStrings returns up to maxSuggestions candidates similar to target,
// closest first. Comparison is case-insensitive.
func FindSimilarStrings(target string, candidates []string, maxSuggestions int) []string {
	if target == "" || len(candidates) == 0 || maxSuggestions <= 0 {
		return nil
	}

	type scored struct {
		str   string
		score float64
	}

	var similar []scored
	targetLower := strings.ToLower(target)
	for _, candidate := range candidates {
		if candidate == target {
			continue
		}
		score := levenshtein.Similarity(targetLower, strings.ToLower(candidate), nil)
		if score >= SuggestionMinScore {
			similar = append(similar, scored{str: candidate, score: score})
		}
	}

	sort.SliceStable(similar, func(i, j int) bool {
		if similar[i].score == similar[j].score {
			return similar[i].str < similar[j].str
		}
		return similar[i].score > similar[j].score
	})

	result := make([]string, 0, maxSuggestions)
	for i := 0; i < len(similar) && i < maxSuggestions; i++ {
		result = append(result, similar[i].str)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
