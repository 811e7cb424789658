package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/poiesic/scriptura/core"
)

// TranslationDocument is the persisted JSON schema for one translation.
// Book and chapter/verse keys are strings in the wire form; they are converted
// to the typed core.Translation on read.
type TranslationDocument struct {
	Translation DocumentInfo                            `json:"translation"`
	Books       map[string]map[string]map[string]string `json:"books"`
	Metadata    DocumentMetadata                        `json:"metadata"`
}

// DocumentInfo carries the translation's display metadata.
type DocumentInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Abbreviation   string `json:"abbreviation"`
	Language       string `json:"language"`
	Year           int    `json:"year"`
	Copyright      string `json:"copyright"`
	IsPublicDomain bool   `json:"isPublicDomain"`
}

// DocumentMetadata carries ingestion bookkeeping for a stored document.
type DocumentMetadata struct {
	TotalVerses   int       `json:"totalVerses"`
	TotalChapters int       `json:"totalChapters"`
	DownloadDate  time.Time `json:"downloadDate"`
	Source        string    `json:"source"`
}

// UnmarshalTranslation parses a persisted document into a core.Translation.
// Returns ErrMalformedDocument for invalid JSON, non-numeric chapter or verse
// keys, non-positive numbers, or empty verse text.
func UnmarshalTranslation(data []byte) (*core.Translation, error) {
	var doc TranslationDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	translation := &core.Translation{
		ID:           doc.Translation.ID,
		Name:         doc.Translation.Name,
		Abbreviation: doc.Translation.Abbreviation,
		Language:     doc.Translation.Language,
		Year:         doc.Translation.Year,
		Copyright:    doc.Translation.Copyright,
		PublicDomain: doc.Translation.IsPublicDomain,
		Books:        make(map[string]map[int]map[int]string, len(doc.Books)),
	}

	for book, chapters := range doc.Books {
		bookMap := make(map[int]map[int]string, len(chapters))
		for chapterKey, verses := range chapters {
			chapter, err := strconv.Atoi(chapterKey)
			if err != nil {
				return nil, fmt.Errorf("%w: chapter key %q in %s", ErrMalformedDocument, chapterKey, book)
			}
			verseMap := make(map[int]string, len(verses))
			for verseKey, text := range verses {
				verse, err := strconv.Atoi(verseKey)
				if err != nil {
					return nil, fmt.Errorf("%w: verse key %q in %s %d", ErrMalformedDocument, verseKey, book, chapter)
				}
				verseMap[verse] = text
			}
			bookMap[chapter] = verseMap
		}
		translation.Books[book] = bookMap
	}

	if err := core.ValidateTranslation(translation); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return translation, nil
}

// MarshalTranslation serializes a core.Translation into the persisted document
// form, computing the metadata verse and chapter totals.
func MarshalTranslation(t *core.Translation, source string) ([]byte, error) {
	if err := core.ValidateTranslation(t); err != nil {
		return nil, err
	}

	doc := TranslationDocument{
		Translation: DocumentInfo{
			ID:             t.ID,
			Name:           t.Name,
			Abbreviation:   t.Abbreviation,
			Language:       t.Language,
			Year:           t.Year,
			Copyright:      t.Copyright,
			IsPublicDomain: t.PublicDomain,
		},
		Books: make(map[string]map[string]map[string]string, len(t.Books)),
	}

	totalVerses := 0
	totalChapters := 0
	for book, chapters := range t.Books {
		bookMap := make(map[string]map[string]string, len(chapters))
		for chapter, verses := range chapters {
			verseMap := make(map[string]string, len(verses))
			for verse, text := range verses {
				verseMap[strconv.Itoa(verse)] = text
			}
			bookMap[strconv.Itoa(chapter)] = verseMap
			totalChapters++
			totalVerses += len(verses)
		}
		doc.Books[book] = bookMap
	}

	doc.Metadata = DocumentMetadata{
		TotalVerses:   totalVerses,
		TotalChapters: totalChapters,
		DownloadDate:  time.Now().UTC(),
		Source:        source,
	}

	return json.Marshal(doc)
}
