package corpus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/scriptura/core"
	"github.com/poiesic/scriptura/storage"
	"github.com/poiesic/scriptura/storage/badger"
)

// countingBlobStore wraps a BlobStore and counts document fetches, so tests
// can observe cache behavior.
type countingBlobStore struct {
	storage.BlobStore
	gets int
}

func (c *countingBlobStore) GetDocument(ctx context.Context, id string) ([]byte, error) {
	c.gets++
	return c.BlobStore.GetDocument(ctx, id)
}

func sampleTranslation() *core.Translation {
	return &core.Translation{
		ID:           "kjv",
		Name:         "King James Version",
		Abbreviation: "KJV",
		Language:     "en",
		Year:         1611,
		PublicDomain: true,
		Books: map[string]map[int]map[int]string{
			"John": {
				3: {16: "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life."},
			},
			"Psalm": {
				23: {1: "The LORD is my shepherd; I shall not want."},
			},
		},
	}
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *countingBlobStore) {
	t.Helper()

	blob, backend, err := badger.NewMemoryBlobStore()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	counting := &countingBlobStore{BlobStore: blob}
	store, err := NewStore(counting, opts...)
	require.NoError(t, err)

	data, err := storage.MarshalTranslation(sampleTranslation(), "test")
	require.NoError(t, err)
	_, err = store.UploadTranslation(context.Background(), "kjv", data)
	require.NoError(t, err)

	return store, counting
}

func TestNewStore(t *testing.T) {
	t.Run("requires blob store", func(t *testing.T) {
		_, err := NewStore(nil)
		assert.ErrorIs(t, err, ErrBlobStoreRequired)
	})
}

func TestGetTranslation(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips an uploaded translation", func(t *testing.T) {
		store, _ := newTestStore(t)

		translation := store.GetTranslation(ctx, "kjv")
		require.NotNil(t, translation)
		assert.Equal(t, "kjv", translation.ID)

		text, ok := translation.VerseText("John", 3, 16)
		require.True(t, ok)
		assert.Contains(t, text, "For God so loved the world")
	})

	t.Run("serves from cache within TTL", func(t *testing.T) {
		store, counting := newTestStore(t)

		// Upload populated the cache; repeated reads never hit the backend.
		before := counting.gets
		store.GetTranslation(ctx, "kjv")
		store.GetTranslation(ctx, "kjv")
		assert.Equal(t, before, counting.gets)
	})

	t.Run("expired entries are re-fetched", func(t *testing.T) {
		store, counting := newTestStore(t, WithCacheTTL(10*time.Millisecond))

		time.Sleep(20 * time.Millisecond)
		before := counting.gets
		store.GetTranslation(ctx, "kjv")
		assert.Equal(t, before+1, counting.gets)
	})

	t.Run("missing translation degrades to built-in fallback", func(t *testing.T) {
		store, _ := newTestStore(t)

		translation := store.GetTranslation(ctx, "missing")
		require.NotNil(t, translation)
		assert.Equal(t, "missing", translation.ID, "fallback carries the requested ID")

		_, ok := translation.VerseText("John", 3, 16)
		assert.True(t, ok, "fallback carries well-known verses")
	})

	t.Run("fallback results are not cached", func(t *testing.T) {
		store, counting := newTestStore(t)

		before := counting.gets
		store.GetTranslation(ctx, "missing")
		store.GetTranslation(ctx, "missing")
		assert.Equal(t, before+2, counting.gets, "each miss retries the backend")
	})
}

func TestListTranslations(t *testing.T) {
	ctx := context.Background()

	t.Run("lists stored IDs", func(t *testing.T) {
		store, _ := newTestStore(t)
		assert.Equal(t, []string{"kjv"}, store.ListTranslations(ctx))
	})

	t.Run("closed backend degrades to fallback list", func(t *testing.T) {
		blob, backend, err := badger.NewMemoryBlobStore()
		require.NoError(t, err)

		store, err := NewStore(blob)
		require.NoError(t, err)

		require.NoError(t, backend.Close())
		ids := store.ListTranslations(ctx)
		assert.Equal(t, []string{FallbackTranslationID}, ids)
	})
}

func TestProjections(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	t.Run("get chapter", func(t *testing.T) {
		chapter, ok := store.GetChapter(ctx, "kjv", "Psalm", 23)
		require.True(t, ok)
		assert.Contains(t, chapter[1], "shepherd")
	})

	t.Run("get missing chapter", func(t *testing.T) {
		_, ok := store.GetChapter(ctx, "kjv", "Psalm", 999)
		assert.False(t, ok)
	})

	t.Run("get verse", func(t *testing.T) {
		verse, ok := store.GetVerse(ctx, "kjv", "John", 3, 16)
		require.True(t, ok)
		assert.Equal(t, "John 3:16", verse.Reference())
		assert.Equal(t, "kjv", verse.TranslationID)
	})

	t.Run("get missing verse", func(t *testing.T) {
		_, ok := store.GetVerse(ctx, "kjv", "John", 3, 999)
		assert.False(t, ok)
	})
}

func TestSearchTranslation(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	t.Run("case-insensitive substring match", func(t *testing.T) {
		matches := store.SearchTranslation(ctx, "kjv", "SHEPHERD", 10)
		require.Len(t, matches, 1)
		assert.Equal(t, "Psalm 23:1", matches[0].Reference())
	})

	t.Run("respects limit", func(t *testing.T) {
		matches := store.SearchTranslation(ctx, "kjv", "the", 1)
		assert.Len(t, matches, 1)
	})

	t.Run("blank query matches nothing", func(t *testing.T) {
		assert.Empty(t, store.SearchTranslation(ctx, "kjv", "  ", 10))
	})
}

func TestUploadAndDelete(t *testing.T) {
	ctx := context.Background()
	store, counting := newTestStore(t)

	t.Run("upload rejects malformed documents", func(t *testing.T) {
		_, err := store.UploadTranslation(ctx, "bad", []byte("not json"))
		assert.ErrorIs(t, err, storage.ErrMalformedDocument)
	})

	t.Run("upload returns a digest and warms the cache", func(t *testing.T) {
		other := sampleTranslation()
		other.ID = "web"
		data, err := storage.MarshalTranslation(other, "test")
		require.NoError(t, err)

		digest, err := store.UploadTranslation(ctx, "web", data)
		require.NoError(t, err)
		assert.NotEmpty(t, digest)

		before := counting.gets
		store.GetTranslation(ctx, "web")
		assert.Equal(t, before, counting.gets)
	})

	t.Run("delete invalidates the cache", func(t *testing.T) {
		require.NoError(t, store.DeleteTranslation(ctx, "web"))

		translation := store.GetTranslation(ctx, "web")
		_, ok := translation.Chapter("Psalm", 23)
		assert.True(t, ok, "deleted translation now serves the fallback")
		assert.NotContains(t, store.ListTranslations(ctx), "web")
	})
}
