package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/scriptura/fallback"
)

func testParser(t *testing.T) *ReferenceParser {
	t.Helper()
	c, err := fallback.Load()
	require.NoError(t, err)
	return NewReferenceParser(c.References())
}

func TestFindExactReferences(t *testing.T) {
	p := testParser(t)

	t.Run("spacing and punctuation variants all match", func(t *testing.T) {
		for _, query := range []string{
			"John 3:16",
			"john 3:16",
			"john3:16",
			"john 3 16",
			"JOHN 3:16",
		} {
			results := p.FindExactReferences(query)
			require.NotEmpty(t, results, "query %q", query)
			assert.Equal(t, "John 3:16", results[0].Reference, "query %q", query)
			assert.Equal(t, 1.0, results[0].RelevanceScore, "query %q", query)
			assert.NotEmpty(t, results[0].Text)
		}
	})

	t.Run("reference embedded in a sentence", func(t *testing.T) {
		results := p.FindExactReferences("what does John 3:16 actually say")
		require.NotEmpty(t, results)
		assert.Equal(t, "John 3:16", results[0].Reference)
		assert.Equal(t, 1.0, results[0].RelevanceScore)
	})

	t.Run("chapter-only query is a partial match", func(t *testing.T) {
		results := p.FindExactReferences("john 3")
		require.NotEmpty(t, results)
		assert.Equal(t, "John 3:16", results[0].Reference)
		assert.Equal(t, 0.9, results[0].RelevanceScore)
	})

	t.Run("chapter prefix does not match a different chapter", func(t *testing.T) {
		for _, r := range p.FindExactReferences("john 30") {
			assert.NotEqual(t, "John 3:16", r.Reference)
		}
	})

	t.Run("longer verse number does not match its numeric prefix", func(t *testing.T) {
		// Hebrews 11:1 and Psalm 23:1 are curated; 11:16 and 23:14 are not.
		for _, query := range []string{"Hebrews 11:16", "hebrews11:16", "psalm 23:14"} {
			for _, r := range p.FindExactReferences(query) {
				assert.Less(t, r.RelevanceScore, 1.0, "query %q resolved %s as exact", query, r.Reference)
			}
		}
	})

	t.Run("exact matches rank before partial ones", func(t *testing.T) {
		results := p.FindExactReferences("psalm 23:1")
		require.NotEmpty(t, results)
		assert.Equal(t, 1.0, results[0].RelevanceScore)
	})

	t.Run("book name alone is not a reference", func(t *testing.T) {
		assert.Empty(t, p.FindExactReferences("john"))
	})

	t.Run("non-reference queries return nothing", func(t *testing.T) {
		assert.Empty(t, p.FindExactReferences("verses about courage"))
		assert.Empty(t, p.FindExactReferences(""))
	})
}
