package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTranslation() *Translation {
	return &Translation{
		ID:   "kjv",
		Name: "King James Version",
		Books: map[string]map[int]map[int]string{
			"John": {
				3: {16: "For God so loved the world..."},
			},
			"Psalm": {
				23: {1: "The LORD is my shepherd;", 2: "He maketh me to lie down"},
			},
		},
	}
}

func TestTranslationAccessors(t *testing.T) {
	tr := testTranslation()

	t.Run("chapter lookup", func(t *testing.T) {
		verses, ok := tr.Chapter("Psalm", 23)
		require.True(t, ok)
		assert.Len(t, verses, 2)

		_, ok = tr.Chapter("Psalm", 24)
		assert.False(t, ok)
		_, ok = tr.Chapter("Job", 1)
		assert.False(t, ok)
	})

	t.Run("verse lookup", func(t *testing.T) {
		text, ok := tr.VerseText("John", 3, 16)
		require.True(t, ok)
		assert.Contains(t, text, "so loved")

		_, ok = tr.VerseText("John", 3, 17)
		assert.False(t, ok)
	})

	t.Run("verse count", func(t *testing.T) {
		assert.Equal(t, 3, tr.VerseCount())
	})
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "John 3:16", FormatReference("John", 3, 16))

	v := Verse{Book: "Psalm", Chapter: 23, Number: 1}
	assert.Equal(t, "Psalm 23:1", v.Reference())
}

func TestValidateTranslation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateTranslation(testTranslation()))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidateTranslation(nil), ErrInvalidTranslation)
	})

	t.Run("empty ID", func(t *testing.T) {
		tr := testTranslation()
		tr.ID = ""
		assert.ErrorIs(t, ValidateTranslation(tr), ErrEmptyTranslationID)
	})

	t.Run("zero chapter", func(t *testing.T) {
		tr := testTranslation()
		tr.Books["John"][0] = map[int]string{1: "text"}
		assert.ErrorIs(t, ValidateTranslation(tr), ErrInvalidChapterNumber)
	})

	t.Run("zero verse", func(t *testing.T) {
		tr := testTranslation()
		tr.Books["John"][3][0] = "text"
		assert.ErrorIs(t, ValidateTranslation(tr), ErrInvalidVerseNumber)
	})

	t.Run("empty verse text", func(t *testing.T) {
		tr := testTranslation()
		tr.Books["John"][3][16] = ""
		assert.ErrorIs(t, ValidateTranslation(tr), ErrEmptyVerseText)
	})

	t.Run("partial corpora are valid", func(t *testing.T) {
		tr := &Translation{ID: "partial", Books: map[string]map[int]map[int]string{}}
		assert.NoError(t, ValidateTranslation(tr))
	})
}

func TestValidateMessage(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateMessage(&Message{Speaker: SpeakerTypeHuman, Contents: "hello"}))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidateMessage(nil), ErrInvalidMessage)
	})

	t.Run("empty contents", func(t *testing.T) {
		assert.ErrorIs(t, ValidateMessage(&Message{Speaker: SpeakerTypeHuman}), ErrEmptyContent)
	})

	t.Run("invalid speaker", func(t *testing.T) {
		assert.ErrorIs(t, ValidateMessage(&Message{Contents: "hi"}), ErrInvalidSpeakerType)
	})
}
