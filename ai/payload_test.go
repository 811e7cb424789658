package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerseResponse(t *testing.T) {
	t.Run("well-formed response", func(t *testing.T) {
		response := `[
			{"reference": "John 3:16", "text": "For God so loved...", "relevanceScore": 0.9, "context": "why"},
			{"reference": "Psalm 23:1", "text": "The LORD is my shepherd", "relevanceScore": 0.8}
		]`
		results, err := ParseVerseResponse(response)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "John 3:16", results[0].Reference)
		assert.Equal(t, 0.9, results[0].RelevanceScore)
		assert.Equal(t, "why", results[0].Context)
	})

	t.Run("malformed entries are dropped", func(t *testing.T) {
		response := `[
			{"reference": "", "text": "no reference"},
			{"reference": "John 3:16", "text": ""},
			{"reference": "Psalm 23:1", "text": "kept", "relevanceScore": 0.5}
		]`
		results, err := ParseVerseResponse(response)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Psalm 23:1", results[0].Reference)
	})

	t.Run("out-of-range scores are clamped", func(t *testing.T) {
		response := `[
			{"reference": "A 1:1", "text": "x", "relevanceScore": 2.5},
			{"reference": "B 1:1", "text": "y", "relevanceScore": -1}
		]`
		results, err := ParseVerseResponse(response)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, 1.0, results[0].RelevanceScore)
		assert.Equal(t, 0.0, results[1].RelevanceScore)
	})

	t.Run("fenced response", func(t *testing.T) {
		response := "```json\n[{\"reference\": \"John 3:16\", \"text\": \"t\", \"relevanceScore\": 0.9}]\n```"
		results, err := ParseVerseResponse(response)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("no payload", func(t *testing.T) {
		_, err := ParseVerseResponse("I'm sorry, I can't help with that.")
		assert.ErrorIs(t, err, ErrNoJSONPayload)
	})
}

func TestParseGuidanceResponse(t *testing.T) {
	t.Run("well-formed response", func(t *testing.T) {
		response := `{
			"narrative": "You are not alone in this.",
			"verses": [{"reference": "Philippians 4:6", "text": "Be careful for nothing", "relevanceScore": 0.9}],
			"steps": ["Pray about it", "  ", "Talk to a friend"],
			"prayer": "Lord, grant peace."
		}`
		result, err := ParseGuidanceResponse(response)
		require.NoError(t, err)
		assert.Equal(t, "You are not alone in this.", result.Narrative)
		require.Len(t, result.Verses, 1)
		assert.Equal(t, []string{"Pray about it", "Talk to a friend"}, result.Steps, "blank steps are dropped")
		assert.Equal(t, "Lord, grant peace.", result.Prayer)
	})

	t.Run("missing narrative is rejected", func(t *testing.T) {
		_, err := ParseGuidanceResponse(`{"narrative": "  ", "steps": ["x"]}`)
		assert.ErrorIs(t, err, ErrMalformedGuidance)
	})

	t.Run("no payload", func(t *testing.T) {
		_, err := ParseGuidanceResponse("plain refusal text")
		assert.ErrorIs(t, err, ErrNoJSONPayload)
	})
}
