package fallback

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/poiesic/scriptura/core"
)

//go:embed data/corpus.json
var corpusData []byte

// Result scoring ladder for the fallback tier. Ranks start at the top score
// and step down, floored so even the last entry stays clearly relevant.
const (
	maxResults = 8
	topScore   = 0.95
	scoreStep  = 0.05
	scoreFloor = 0.70
)

// VerseEntry is one curated verse with its explanatory context.
type VerseEntry struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

// ReferenceEntry is a canonical reference with its verse content, used by the
// reference parser for exact-match shortcuts.
type ReferenceEntry struct {
	Reference string
	Text      string
	Context   string
}

type corpusFile struct {
	Verses     map[string]VerseEntry `json:"verses"`
	References []string              `json:"references"`
	Themes     map[string][]string   `json:"themes"`
	Books      map[string][]string   `json:"books"`
	Default    []string              `json:"default"`
}

// Corpus is the curated, read-only verse set indexed by theme and by book.
// It is pure and offline: the retrieval strategy of last resort.
type Corpus struct {
	verses     map[string]VerseEntry
	references []string
	themes     map[string][]string
	themeNames []string
	books      map[string][]string
	bookNames  []string
	defaults   []string
}

// Load parses the embedded corpus data. Every reference listed in an index
// must resolve to a verse entry; a corpus that does not is a build defect.
func Load() (*Corpus, error) {
	var file corpusFile
	if err := json.Unmarshal(corpusData, &file); err != nil {
		return nil, fmt.Errorf("fallback corpus: %w", err)
	}

	c := &Corpus{
		verses:     file.Verses,
		references: file.References,
		themes:     file.Themes,
		books:      file.Books,
		defaults:   file.Default,
	}

	for _, refs := range [][]string{file.References, file.Default} {
		for _, ref := range refs {
			if _, ok := c.verses[ref]; !ok {
				return nil, fmt.Errorf("fallback corpus: unresolved reference %q", ref)
			}
		}
	}
	for theme, refs := range file.Themes {
		c.themeNames = append(c.themeNames, theme)
		for _, ref := range refs {
			if _, ok := c.verses[ref]; !ok {
				return nil, fmt.Errorf("fallback corpus: theme %q: unresolved reference %q", theme, ref)
			}
		}
	}
	for book, refs := range file.Books {
		c.bookNames = append(c.bookNames, book)
		for _, ref := range refs {
			if _, ok := c.verses[ref]; !ok {
				return nil, fmt.Errorf("fallback corpus: book %q: unresolved reference %q", book, ref)
			}
		}
	}

	// Sorted index orders keep result ordering deterministic across runs.
	sort.Strings(c.themeNames)
	sort.Strings(c.bookNames)

	return c, nil
}

// Lookup returns the curated entry for a display reference.
func (c *Corpus) Lookup(reference string) (VerseEntry, bool) {
	entry, ok := c.verses[reference]
	return entry, ok
}

// References returns the canonical reference entries recognized by the
// reference parser, in corpus order.
func (c *Corpus) References() []ReferenceEntry {
	entries := make([]ReferenceEntry, 0, len(c.references))
	for _, ref := range c.references {
		verse := c.verses[ref]
		entries = append(entries, ReferenceEntry{
			Reference: ref,
			Text:      verse.Text,
			Context:   verse.Context,
		})
	}
	return entries
}

// SearchByTheme finds curated verses matching the query's search terms,
// combining theme-name matches, direct keyword matches against verse text and
// context, and book-name matches. Results are deduplicated by reference,
// scored on a descending ladder, and capped. The default branch guarantees a
// non-empty result for any non-empty query.
func (c *Corpus) SearchByTheme(query string) []core.SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	terms := extractSearchTerms(query)

	var ordered []string
	seen := make(map[string]bool)
	add := func(refs ...string) {
		for _, ref := range refs {
			if !seen[ref] {
				seen[ref] = true
				ordered = append(ordered, ref)
			}
		}
	}

	// Theme names: substring match in either direction against each term.
	for _, theme := range c.themeNames {
		for _, term := range terms {
			if strings.Contains(theme, term) || strings.Contains(term, theme) {
				add(c.themes[theme]...)
				break
			}
		}
	}

	// Direct keyword scan of verse text and context.
	for _, ref := range c.references {
		verse := c.verses[ref]
		haystack := strings.ToLower(verse.Text + " " + verse.Context)
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				add(ref)
				break
			}
		}
	}

	// Book names.
	for _, book := range c.bookNames {
		for _, term := range terms {
			if strings.Contains(book, term) || strings.Contains(term, book) {
				add(c.books[book]...)
				break
			}
		}
	}

	if len(ordered) == 0 {
		add(c.defaults...)
	}
	if len(ordered) > maxResults {
		ordered = ordered[:maxResults]
	}

	results := make([]core.SearchResult, 0, len(ordered))
	for rank, ref := range ordered {
		verse := c.verses[ref]
		results = append(results, core.SearchResult{
			Reference:      ref,
			Text:           verse.Text,
			RelevanceScore: ladderScore(rank),
			Context:        verse.Context,
		})
	}
	return results
}

// VersesForTheme returns up to limit curated verses for a named theme,
// scored on the same descending ladder. Unknown themes fall back to the
// default verse set.
func (c *Corpus) VersesForTheme(theme string, limit int) []core.SearchResult {
	refs, ok := c.themes[theme]
	if !ok {
		refs = c.defaults
	}
	if limit > 0 && len(refs) > limit {
		refs = refs[:limit]
	}

	results := make([]core.SearchResult, 0, len(refs))
	for rank, ref := range refs {
		verse := c.verses[ref]
		results = append(results, core.SearchResult{
			Reference:      ref,
			Text:           verse.Text,
			RelevanceScore: ladderScore(rank),
			Context:        verse.Context,
		})
	}
	return results
}

func ladderScore(rank int) float64 {
	score := topScore - scoreStep*float64(rank)
	if score < scoreFloor {
		score = scoreFloor
	}
	return score
}
