package core

import (
	"fmt"
	"time"
)

// SpeakerType identifies the source of a conversation message.
type SpeakerType int

const (
	// SpeakerTypeHuman represents a human user.
	SpeakerTypeHuman SpeakerType = iota + 1
	// SpeakerTypeAI represents an AI assistant.
	SpeakerTypeAI
)

// Message represents a single turn in a guidance conversation.
// Conversation history is supplied by the caller on each request;
// it is never stored by this module.
type Message struct {
	Speaker   SpeakerType
	Contents  string
	Timestamp time.Time
}

// Translation is one complete or partial Bible text edition.
// Books maps book name -> chapter number -> verse number -> verse text.
// Partial corpora are an expected, handled condition: missing books,
// chapters, or verses are simply absent from the maps.
type Translation struct {
	ID           string
	Name         string
	Abbreviation string
	Language     string
	Year         int
	Copyright    string
	PublicDomain bool
	Books        map[string]map[int]map[int]string
}

// Chapter returns the verse map for one chapter of a book.
func (t *Translation) Chapter(book string, chapter int) (map[int]string, bool) {
	chapters, ok := t.Books[book]
	if !ok {
		return nil, false
	}
	verses, ok := chapters[chapter]
	return verses, ok
}

// VerseText returns the text of a single verse.
func (t *Translation) VerseText(book string, chapter, verse int) (string, bool) {
	verses, ok := t.Chapter(book, chapter)
	if !ok {
		return "", false
	}
	text, ok := verses[verse]
	return text, ok
}

// VerseCount returns the total number of verses present in the translation.
func (t *Translation) VerseCount() int {
	count := 0
	for _, chapters := range t.Books {
		for _, verses := range chapters {
			count += len(verses)
		}
	}
	return count
}

// Verse is a flattened projection of one (translation, book, chapter, verse)
// cell with its text. Produced on read, never persisted standalone.
type Verse struct {
	TranslationID string
	Book          string
	Chapter       int
	Number        int
	Text          string
}

// Reference returns the canonical display reference for the verse.
func (v *Verse) Reference() string {
	return FormatReference(v.Book, v.Chapter, v.Number)
}

// FormatReference builds the canonical "Book Chapter:Verse" display form.
func FormatReference(book string, chapter, verse int) string {
	return fmt.Sprintf("%s %d:%d", book, chapter, verse)
}

// SearchResult is one ranked verse hit. Within a result set, Reference is
// unique and results are sorted descending by RelevanceScore.
type SearchResult struct {
	Reference      string  `json:"reference"`
	Text           string  `json:"text"`
	RelevanceScore float64 `json:"relevanceScore"`
	Context        string  `json:"context,omitempty"`
}

// GuidanceResult is the structured response of the guidance orchestrator:
// a narrative, supporting verses, practical steps, and a suggested prayer.
// Produced per request; not persisted.
type GuidanceResult struct {
	Narrative    string         `json:"narrative"`
	Verses       []SearchResult `json:"verses"`
	Steps        []string       `json:"steps"`
	Prayer       string         `json:"prayer,omitempty"`
	UsedFallback bool           `json:"usedFallback"`
}
