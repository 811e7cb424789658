package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	cfg := DefaultScoringConfig()

	t.Run("always in range", func(t *testing.T) {
		cases := []struct{ query, text string }{
			{"love", "For God so loved the world"},
			{"peace peace peace", "peace peace peace peace peace peace peace peace peace peace"},
			{"unrelated", "completely different text"},
			{"", "some text"},
			{"the and of", "stopwords only"},
		}
		for _, tc := range cases {
			score := cfg.Score(tc.query, tc.text)
			assert.GreaterOrEqual(t, score, 0.0, "query %q", tc.query)
			assert.LessOrEqual(t, score, 1.0, "query %q", tc.query)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first := cfg.Score("strength in trouble", "God is our refuge and strength, a very present help in trouble.")
		second := cfg.Score("strength in trouble", "God is our refuge and strength, a very present help in trouble.")
		assert.Equal(t, first, second)
	})

	t.Run("no matching terms scores zero", func(t *testing.T) {
		assert.Zero(t, cfg.Score("xylophone", "For God so loved the world"))
	})

	t.Run("multi-term match beats single-term match", func(t *testing.T) {
		text := "Trust in the LORD with all thine heart; and lean not unto thine own understanding."
		single := cfg.Score("trust", text)
		multi := cfg.Score("trust heart", text)
		assert.Greater(t, multi, single)
	})

	t.Run("repeated terms counted once", func(t *testing.T) {
		text := "Peace I leave with you, my peace I give unto you."
		assert.Equal(t, cfg.Score("peace", text), cfg.Score("peace peace", text))
	})

	t.Run("stopwords are ignored", func(t *testing.T) {
		text := "For God so loved the world"
		assert.Equal(t, cfg.Score("loved", text), cfg.Score("the loved and", text))
	})
}
