package search

import "strings"

// ScoringConfig holds the relevance scoring constants. The values are
// empirically chosen and preserved as configuration rather than re-derived;
// no ground-truth relevance judgments exist to validate alternatives against.
type ScoringConfig struct {
	// TermLengthDivisor weights each occurrence by termLength/divisor, so
	// longer, more specific terms contribute more.
	TermLengthDivisor float64

	// MultiTermBonus multiplies the raw score when more than one distinct
	// term matched, rewarding multi-term relevance over single-term
	// coincidence.
	MultiTermBonus float64

	// NormalizationDivisor maps the raw score into [0,1] via
	// min(raw/divisor, 1).
	NormalizationDivisor float64
}

// DefaultScoringConfig returns the standard scoring constants.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		TermLengthDivisor:    3,
		MultiTermBonus:       1.2,
		NormalizationDivisor: 10,
	}
}

// Score rates how relevant a verse text is to the query terms.
// It is deterministic and side-effect-free, and always returns a value
// in [0,1].
func (c ScoringConfig) Score(query, verseText string) float64 {
	terms := extractSearchTerms(query)
	if len(terms) == 0 {
		return 0
	}

	lower := strings.ToLower(verseText)
	raw := 0.0
	matched := 0
	// Distinct terms only: repeating a term in the query must not inflate
	// the score; occurrences in the verse text still count.
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		if seen[term] {
			continue
		}
		seen[term] = true

		count := strings.Count(lower, term)
		if count == 0 {
			continue
		}
		matched++
		raw += float64(count) * float64(len(term)) / c.TermLengthDivisor
	}

	if matched > 1 {
		raw *= c.MultiTermBonus
	}

	score := raw / c.NormalizationDivisor
	if score > 1 {
		score = 1
	}
	return score
}
