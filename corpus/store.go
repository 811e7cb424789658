package corpus

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/poiesic/scriptura/core"
	"github.com/poiesic/scriptura/storage"
)

// DefaultCacheTTL is how long a loaded translation stays cached before a
// read triggers a re-fetch.
const DefaultCacheTTL = 30 * time.Minute

// cacheEntry pairs a loaded translation with its expiry. A read past
// expiresAt is treated as a miss.
type cacheEntry struct {
	translation *core.Translation
	expiresAt   time.Time
}

// Store fetches, caches, and serves whole-translation corpora from the blob
// backend. Every read operation returns a usable value, degrading to the
// built-in fallback translation rather than failing; the layers above trust
// this component to never be fatally absent.
type Store struct {
	blob   storage.BlobStore
	ttl    time.Duration
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// Option configures a Store.
type Option func(*Store) error

// WithCacheTTL sets the cache time-to-live.
// Default is DefaultCacheTTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Store) error {
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		s.ttl = ttl
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewStore creates a translation store over the given blob backend.
func NewStore(blob storage.BlobStore, opts ...Option) (*Store, error) {
	if blob == nil {
		return nil, ErrBlobStoreRequired
	}

	s := &Store{
		blob:   blob,
		ttl:    DefaultCacheTTL,
		logger: slog.Default().With("component", "translation-store"),
		cache:  make(map[string]cacheEntry),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ListTranslations enumerates the available translation IDs. When the
// backend listing fails, a fixed minimal fallback list is returned so
// downstream search always has something to iterate.
func (s *Store) ListTranslations(ctx context.Context) []string {
	ids, err := s.blob.ListIDs(ctx)
	if err != nil {
		s.logger.Warn("translation listing unavailable, using fallback list", "err", err)
		return fallbackTranslationIDs()
	}
	return ids
}

// GetTranslation returns the translation for an ID, serving from cache when
// fresh. On any fetch or parse failure the built-in fallback translation is
// returned under the requested ID; retrieval degrades, it does not crash.
func (s *Store) GetTranslation(ctx context.Context, id string) *core.Translation {
	if cached, ok := s.cached(id); ok {
		return cached
	}

	data, err := s.blob.GetDocument(ctx, id)
	if err != nil {
		s.logger.Warn("translation fetch failed, serving built-in fallback", "translation", id, "err", err)
		return fallbackTranslation(id)
	}

	translation, err := storage.UnmarshalTranslation(data)
	if err != nil {
		s.logger.Warn("translation document malformed, serving built-in fallback", "translation", id, "err", err)
		return fallbackTranslation(id)
	}

	s.store(id, translation)
	return translation
}

// GetChapter returns one chapter of a translation as a verse-number map.
func (s *Store) GetChapter(ctx context.Context, id, book string, chapter int) (map[int]string, bool) {
	return s.GetTranslation(ctx, id).Chapter(book, chapter)
}

// GetVerse returns a single verse projection.
func (s *Store) GetVerse(ctx context.Context, id, book string, chapter, verse int) (*core.Verse, bool) {
	text, ok := s.GetTranslation(ctx, id).VerseText(book, chapter, verse)
	if !ok {
		return nil, false
	}
	return &core.Verse{
		TranslationID: id,
		Book:          book,
		Chapter:       chapter,
		Number:        verse,
		Text:          text,
	}, true
}

// SearchTranslation scans every verse of a translation for a
// case-insensitive substring match on the query, stopping once limit
// matches are found. Iteration order is deterministic (books, chapters, and
// verses in sorted order) so deduplication upstream is stable. This is
// intentionally simple substring search; relevance scoring happens one
// layer up.
func (s *Store) SearchTranslation(ctx context.Context, id, query string, limit int) []core.Verse {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" || limit <= 0 {
		return nil
	}

	translation := s.GetTranslation(ctx, id)

	books := make([]string, 0, len(translation.Books))
	for book := range translation.Books {
		books = append(books, book)
	}
	sort.Strings(books)

	var matches []core.Verse
	for _, book := range books {
		chapters := translation.Books[book]
		chapterNums := make([]int, 0, len(chapters))
		for chapter := range chapters {
			chapterNums = append(chapterNums, chapter)
		}
		sort.Ints(chapterNums)

		for _, chapter := range chapterNums {
			verses := chapters[chapter]
			verseNums := make([]int, 0, len(verses))
			for verse := range verses {
				verseNums = append(verseNums, verse)
			}
			sort.Ints(verseNums)

			for _, verse := range verseNums {
				text := verses[verse]
				if !strings.Contains(strings.ToLower(text), needle) {
					continue
				}
				matches = append(matches, core.Verse{
					TranslationID: id,
					Book:          book,
					Chapter:       chapter,
					Number:        verse,
					Text:          text,
				})
				if len(matches) >= limit {
					return matches
				}
			}
		}
	}
	return matches
}

// UploadTranslation validates and writes a translation document through to
// the backend and refreshes the cache, so subsequent reads reflect the
// change immediately. Returns the stored document's content digest.
func (s *Store) UploadTranslation(ctx context.Context, id string, data []byte) (string, error) {
	translation, err := storage.UnmarshalTranslation(data)
	if err != nil {
		return "", err
	}

	digest, err := s.blob.PutDocument(ctx, id, data)
	if err != nil {
		return "", err
	}

	s.store(id, translation)
	return digest, nil
}

// DeleteTranslation removes a translation from the backend and invalidates
// its cache entry.
func (s *Store) DeleteTranslation(ctx context.Context, id string) error {
	err := s.blob.DeleteDocument(ctx, id)

	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()

	return err
}

// Invalidate drops a translation from the cache without touching the backend.
func (s *Store) Invalidate(id string) {
	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()
}

func (s *Store) cached(id string) (*core.Translation, bool) {
	s.mu.RLock()
	entry, ok := s.cache[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.translation, true
}

func (s *Store) store(id string, translation *core.Translation) {
	s.mu.Lock()
	s.cache[id] = cacheEntry{
		translation: translation,
		expiresAt:   time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
}
