package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/scriptura/storage"
)

func newTestBlobStore(t *testing.T) storage.BlobStore {
	t.Helper()

	blob, backend, err := NewMemoryBlobStore()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return blob
}

func TestBlobStore_PutGet(t *testing.T) {
	ctx := context.Background()
	blob := newTestBlobStore(t)

	t.Run("round trip", func(t *testing.T) {
		digest, err := blob.PutDocument(ctx, "kjv", []byte(`{"a":1}`))
		require.NoError(t, err)
		assert.Len(t, digest, 64, "hex BLAKE2b-256 digest")

		data, err := blob.GetDocument(ctx, "kjv")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), data)

		stored, err := blob.Digest(ctx, "kjv")
		require.NoError(t, err)
		assert.Equal(t, digest, stored)
	})

	t.Run("replace updates digest", func(t *testing.T) {
		first, err := blob.PutDocument(ctx, "web", []byte("one"))
		require.NoError(t, err)
		second, err := blob.PutDocument(ctx, "web", []byte("two"))
		require.NoError(t, err)
		assert.NotEqual(t, first, second)

		stored, err := blob.Digest(ctx, "web")
		require.NoError(t, err)
		assert.Equal(t, second, stored)
	})

	t.Run("identical content yields identical digest", func(t *testing.T) {
		a, err := blob.PutDocument(ctx, "a", []byte("same"))
		require.NoError(t, err)
		b, err := blob.PutDocument(ctx, "b", []byte("same"))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := blob.GetDocument(ctx, "nope")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("empty ID", func(t *testing.T) {
		_, err := blob.GetDocument(ctx, "")
		assert.ErrorIs(t, err, storage.ErrEmptyID)
		_, err = blob.PutDocument(ctx, "", []byte("x"))
		assert.ErrorIs(t, err, storage.ErrEmptyID)
	})
}

func TestBlobStore_ListIDs(t *testing.T) {
	ctx := context.Background()
	blob := newTestBlobStore(t)

	ids, err := blob.ListIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, id := range []string{"web", "asv", "kjv"} {
		_, err := blob.PutDocument(ctx, id, []byte("{}"))
		require.NoError(t, err)
	}

	ids, err = blob.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"asv", "kjv", "web"}, ids, "IDs are sorted")
}

func TestBlobStore_Delete(t *testing.T) {
	ctx := context.Background()
	blob := newTestBlobStore(t)

	_, err := blob.PutDocument(ctx, "kjv", []byte("{}"))
	require.NoError(t, err)

	require.NoError(t, blob.DeleteDocument(ctx, "kjv"))

	_, err = blob.GetDocument(ctx, "kjv")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = blob.Digest(ctx, "kjv")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	t.Run("deleting a missing document fails", func(t *testing.T) {
		assert.ErrorIs(t, blob.DeleteDocument(ctx, "kjv"), storage.ErrNotFound)
	})
}

func TestBackend_Closed(t *testing.T) {
	blob, backend, err := NewMemoryBlobStore()
	require.NoError(t, err)
	require.NoError(t, backend.Close())
	assert.True(t, backend.IsClosed())

	_, err = blob.GetDocument(context.Background(), "kjv")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
