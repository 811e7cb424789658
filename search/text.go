package search

import "strings"

// Stop words excluded when extracting scoring terms from a query
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// extractSearchTerms splits a query into lowercase terms longer than two
// characters, trimming punctuation and dropping stop words.
func extractSearchTerms(query string) []string {
	words := strings.Fields(query)
	terms := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if len(cleaned) <= 2 || stopWords[cleaned] {
			continue
		}
		terms = append(terms, cleaned)
	}

	return terms
}
