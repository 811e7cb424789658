package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		out, ok := ExtractJSONArray(`[{"a": 1}]`)
		require.True(t, ok)
		assert.Equal(t, `[{"a": 1}]`, out)
	})

	t.Run("markdown fenced", func(t *testing.T) {
		out, ok := ExtractJSONArray("```json\n[1, 2, 3]\n```")
		require.True(t, ok)
		assert.Equal(t, "[1, 2, 3]", out)
	})

	t.Run("surrounded by prose", func(t *testing.T) {
		out, ok := ExtractJSONArray(`Here are the verses: [{"reference": "John 3:16"}] Hope that helps!`)
		require.True(t, ok)
		assert.Equal(t, `[{"reference": "John 3:16"}]`, out)
	})

	t.Run("brackets inside strings do not miscount", func(t *testing.T) {
		out, ok := ExtractJSONArray(`[{"text": "a ] tricky [ value"}]`)
		require.True(t, ok)
		assert.Equal(t, `[{"text": "a ] tricky [ value"}]`, out)
	})

	t.Run("escaped quotes inside strings", func(t *testing.T) {
		out, ok := ExtractJSONArray(`[{"text": "he said \"go\" ]"}]`)
		require.True(t, ok)
		assert.Equal(t, `[{"text": "he said \"go\" ]"}]`, out)
	})

	t.Run("nested arrays", func(t *testing.T) {
		out, ok := ExtractJSONArray(`[[1], [2]]`)
		require.True(t, ok)
		assert.Equal(t, `[[1], [2]]`, out)
	})

	t.Run("no array present", func(t *testing.T) {
		_, ok := ExtractJSONArray("no structure here")
		assert.False(t, ok)
	})

	t.Run("unbalanced", func(t *testing.T) {
		_, ok := ExtractJSONArray(`[{"a": 1}`)
		assert.False(t, ok)
	})
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("object with prose", func(t *testing.T) {
		out, ok := ExtractJSONObject(`Sure! {"narrative": "text {with} braces"} done`)
		require.True(t, ok)
		assert.Equal(t, `{"narrative": "text {with} braces"}`, out)
	})

	t.Run("fenced object", func(t *testing.T) {
		out, ok := ExtractJSONObject("```\n{\"a\": 1}\n```")
		require.True(t, ok)
		assert.Equal(t, `{"a": 1}`, out)
	})

	t.Run("no object present", func(t *testing.T) {
		_, ok := ExtractJSONObject("nothing")
		assert.False(t, ok)
	})
}
