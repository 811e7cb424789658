package search

import (
	"strings"

	"github.com/poiesic/scriptura/core"
	"github.com/poiesic/scriptura/fallback"
)

// Confidence assigned to reference matches. A query containing the full
// reference is exact; a chapter-only prefix ("john 3" for "John 3:16")
// matches at lower confidence.
const (
	exactReferenceScore   = 1.0
	partialReferenceScore = 0.9
)

// ReferenceParser recognizes exact scripture references embedded in free-text
// queries, tolerating spacing and punctuation variants ("John 3:16",
// "john3:16", "john 3 16").
type ReferenceParser struct {
	entries []refEntry
}

type refEntry struct {
	reference string
	text      string
	context   string

	looseTokens   []string // lowercased, separators as token breaks: ["john","3","16"]
	chapterTokens []string // book + chapter only: ["john","3"]
}

// NewReferenceParser builds a parser over the curated canonical references.
func NewReferenceParser(entries []fallback.ReferenceEntry) *ReferenceParser {
	p := &ReferenceParser{entries: make([]refEntry, 0, len(entries))}
	for _, entry := range entries {
		p.entries = append(p.entries, refEntry{
			reference:     entry.Reference,
			text:          entry.Text,
			context:       entry.Context,
			looseTokens:   looseTokens(entry.Reference),
			chapterTokens: looseTokens(chapterPrefix(entry.Reference)),
		})
	}
	return p
}

// FindExactReferences returns the canonical references recognized in the
// query, exact matches first. Returns an empty slice, never an error, when
// nothing matches; callers treat empty as "try the next strategy".
func (p *ReferenceParser) FindExactReferences(query string) []core.SearchResult {
	qTokens := looseTokens(query)
	if len(qTokens) == 0 {
		return nil
	}

	var exact, partial []core.SearchResult
	for _, e := range p.entries {
		switch {
		case containsTokens(qTokens, e.looseTokens):
			exact = append(exact, core.SearchResult{
				Reference:      e.reference,
				Text:           e.text,
				RelevanceScore: exactReferenceScore,
				Context:        e.context,
			})
		case containsTokens(qTokens, e.chapterTokens):
			partial = append(partial, core.SearchResult{
				Reference:      e.reference,
				Text:           e.text,
				RelevanceScore: partialReferenceScore,
				Context:        e.context,
			})
		}
	}

	return append(exact, partial...)
}

// chapterPrefix strips the verse component: "John 3:16" -> "John 3".
func chapterPrefix(reference string) string {
	if i := strings.IndexByte(reference, ':'); i >= 0 {
		return reference[:i]
	}
	return reference
}

// looseTokens lowercases a reference or query and splits it on whitespace and
// reference punctuation, so "John 3:16", "john3:16" and "john 3 16" all
// normalize comparably. Runs of digits and runs of letters become separate
// tokens, which is what lets the no-space variant split apart.
func looseTokens(s string) []string {
	s = strings.ToLower(s)
	var tokens []string
	var current strings.Builder
	var currentDigit bool

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			if current.Len() > 0 && !currentDigit {
				flush()
			}
			currentDigit = true
			current.WriteRune(r)
		case r >= 'a' && r <= 'z':
			if current.Len() > 0 && currentDigit {
				flush()
			}
			currentDigit = false
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// containsTokens reports whether needle occurs as a contiguous subsequence of
// haystack. Token-level matching avoids false prefixes ("john 3" must not
// match inside "john 30").
func containsTokens(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, tok := range needle {
			if haystack[i+j] != tok {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
