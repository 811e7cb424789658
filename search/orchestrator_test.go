package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/scriptura/ai/mock"
	"github.com/poiesic/scriptura/core"
	"github.com/poiesic/scriptura/corpus"
	"github.com/poiesic/scriptura/fallback"
	"github.com/poiesic/scriptura/storage"
	"github.com/poiesic/scriptura/storage/badger"
)

func testTranslation() *core.Translation {
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
				46: {1: "God is our refuge and strength, a very present help in trouble."},
			},
			"Proverbs": {
				3: {5: "Trust in the LORD with all thine heart; and lean not unto thine own understanding."},
			},
		},
	}
}

func testStore(t *testing.T) *corpus.Store {
	t.Helper()

	blob, backend, err := badger.NewMemoryBlobStore()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	store, err := corpus.NewStore(blob)
	require.NoError(t, err)

	data, err := storage.MarshalTranslation(testTranslation(), "test")
	require.NoError(t, err)
	_, err = store.UploadTranslation(context.Background(), "kjv", data)
	require.NoError(t, err)

	return store
}

func testOrchestrator(t *testing.T, opts ...OrchestratorOption) *Orchestrator {
	t.Helper()

	c, err := fallback.Load()
	require.NoError(t, err)

	o, err := NewOrchestrator(testStore(t), c, opts...)
	require.NoError(t, err)
	t.Cleanup(o.Close)

	return o
}

func TestNewOrchestrator(t *testing.T) {
	c, err := fallback.Load()
	require.NoError(t, err)

	t.Run("requires store", func(t *testing.T) {
		_, err := NewOrchestrator(nil, c)
		assert.ErrorIs(t, err, ErrStoreRequired)
	})

	t.Run("requires fallback corpus", func(t *testing.T) {
		_, err := NewOrchestrator(testStore(t), nil)
		assert.ErrorIs(t, err, ErrFallbackCorpusRequired)
	})
}

func TestSearch_CorpusTier(t *testing.T) {
	primary := mock.NewMockVerseFinder()
	o := testOrchestrator(t, WithPrimaryFinder(primary))
	ctx := context.Background()

	t.Run("empty query is rejected", func(t *testing.T) {
		_, err := o.Search(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("keyword hit stays local", func(t *testing.T) {
		response, err := o.Search(ctx, "refuge and strength")
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)

		assert.False(t, response.UsedFallback)
		assert.Equal(t, "Psalm 46:1", response.Results[0].Reference)
		assert.Zero(t, primary.CallCount(), "AI tier must not run when the corpus answers")
	})

	t.Run("reference query resolves from the curated set", func(t *testing.T) {
		response, err := o.Search(ctx, "what does john 3:16 say")
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)

		assert.False(t, response.UsedFallback)
		assert.Equal(t, "John 3:16", response.Results[0].Reference)
		assert.Equal(t, 1.0, response.Results[0].RelevanceScore)
	})

	t.Run("results are deduplicated and sorted", func(t *testing.T) {
		response, err := o.Search(ctx, "god")
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)

		seen := make(map[string]bool)
		for i, r := range response.Results {
			assert.False(t, seen[r.Reference], "duplicate %s", r.Reference)
			seen[r.Reference] = true
			if i > 0 {
				assert.LessOrEqual(t, r.RelevanceScore, response.Results[i-1].RelevanceScore)
			}
		}
	})
}

func TestSearch_ProviderTiers(t *testing.T) {
	ctx := context.Background()

	t.Run("primary answers when corpus is silent", func(t *testing.T) {
		primary := mock.NewMockVerseFinder()
		secondary := mock.NewMockVerseFinder()
		o := testOrchestrator(t, WithPrimaryFinder(primary), WithSecondaryFinder(secondary))

		response, err := o.Search(ctx, "wisdom for raising children")
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)

		assert.True(t, response.UsedFallback)
		assert.Equal(t, 1, primary.CallCount())
		assert.Zero(t, secondary.CallCount())
	})

	t.Run("secondary answers when primary fails", func(t *testing.T) {
		primary := mock.NewMockVerseFinder()
		primary.FindVersesFunc = func(ctx context.Context, query string) ([]core.SearchResult, error) {
			return nil, errors.New("provider down")
		}
		secondary := mock.NewMockVerseFinder()
		o := testOrchestrator(t, WithPrimaryFinder(primary), WithSecondaryFinder(secondary))

		response, err := o.Search(ctx, "wisdom for raising children")
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)

		assert.True(t, response.UsedFallback)
		assert.Equal(t, 1, primary.CallCount())
		assert.Equal(t, 1, secondary.CallCount())
	})

	t.Run("empty provider results move to the next tier", func(t *testing.T) {
		primary := mock.NewMockVerseFinder()
		primary.FindVersesFunc = func(ctx context.Context, query string) ([]core.SearchResult, error) {
			return nil, nil
		}
		secondary := mock.NewMockVerseFinder()
		o := testOrchestrator(t, WithPrimaryFinder(primary), WithSecondaryFinder(secondary))

		response, err := o.Search(ctx, "wisdom for raising children")
		require.NoError(t, err)
		assert.Equal(t, 1, secondary.CallCount())
		assert.True(t, response.UsedFallback)
	})

	t.Run("malformed provider entries are dropped", func(t *testing.T) {
		primary := mock.NewMockVerseFinder()
		primary.FindVersesFunc = func(ctx context.Context, query string) ([]core.SearchResult, error) {
			return []core.SearchResult{
				{Reference: "", Text: "missing reference"},
				{Reference: "Psalm 121:1", Text: "I will lift up mine eyes unto the hills, from whence cometh my help.", RelevanceScore: 3.5},
			}, nil
		}
		o := testOrchestrator(t, WithPrimaryFinder(primary))

		response, err := o.Search(ctx, "wisdom for raising children")
		require.NoError(t, err)
		require.Len(t, response.Results, 1)
		assert.Equal(t, "Psalm 121:1", response.Results[0].Reference)
		assert.Equal(t, 1.0, response.Results[0].RelevanceScore, "out-of-range scores are clamped")
	})
}

func TestSearch_ThematicTier(t *testing.T) {
	ctx := context.Background()

	t.Run("no providers configured", func(t *testing.T) {
		o := testOrchestrator(t)

		response, err := o.Search(ctx, "comfort in grief")
		require.NoError(t, err)
		require.NotEmpty(t, response.Results, "thematic tier must always answer")
		assert.True(t, response.UsedFallback)
	})

	t.Run("all providers fail", func(t *testing.T) {
		failing := func(ctx context.Context, query string) ([]core.SearchResult, error) {
			return nil, errors.New("provider down")
		}
		primary := mock.NewMockVerseFinder()
		primary.FindVersesFunc = failing
		secondary := mock.NewMockVerseFinder()
		secondary.FindVersesFunc = failing
		o := testOrchestrator(t, WithPrimaryFinder(primary), WithSecondaryFinder(secondary))

		response, err := o.Search(ctx, "nonsense gibberish zzz")
		require.NoError(t, err)
		require.NotEmpty(t, response.Results)
		assert.True(t, response.UsedFallback)
		assert.Equal(t, 1, primary.CallCount())
		assert.Equal(t, 1, secondary.CallCount())
	})
}

func TestSearchWithMonitor(t *testing.T) {
	o := testOrchestrator(t)

	recorder := &recordingMonitor{}
	response, err := o.SearchWithMonitor(context.Background(), "refuge and strength", recorder)
	require.NoError(t, err)
	require.NotEmpty(t, response.Results)

	assert.Equal(t, "refuge and strength", recorder.started)
	assert.Greater(t, recorder.corpusHits, 0)
	assert.True(t, recorder.finished)
}

type recordingMonitor struct {
	started    string
	corpusHits int
	finished   bool
}

func (r *recordingMonitor) Start(query string)                   { r.started = query }
func (r *recordingMonitor) ReferenceHit(_ []core.SearchResult) {}
func (r *recordingMonitor) AfterCorpusSearch(hits int)           { r.corpusHits = hits }
func (r *recordingMonitor) ProviderSkipped(_, _ string) {}
func (r *recordingMonitor) ProviderFailed(_ string, _ error) {}
func (r *recordingMonitor) ProviderHit(_ string, _ int) {}
func (r *recordingMonitor) FallbackUsed(_ int) {}
func (r *recordingMonitor) Finish(_ *Response)                   { r.finished = true }
