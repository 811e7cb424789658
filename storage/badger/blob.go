package badger

import (
	"context"
	"encoding/hex"
	"errors"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/scriptura/storage"
)

// BlobStore implements storage.BlobStore on top of a badger Backend.
// Documents are stored whole under a per-translation key, with a BLAKE2b
// content digest alongside.
type BlobStore struct {
	backend *Backend
}

var _ storage.BlobStore = (*BlobStore)(nil)

// NewBlobStore creates a new BlobStore over the given backend.
func NewBlobStore(backend *Backend) (*BlobStore, error) {
	return &BlobStore{backend: backend}, nil
}

// contentDigest computes the hex BLAKE2b-256 digest of a document.
func contentDigest(data []byte) string {
	h, _ := blake2b.New(32, nil)
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// GetDocument retrieves the raw JSON document for a translation ID.
func (s *BlobStore) GetDocument(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, storage.ErrEmptyID
	}

	var data []byte
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDocumentKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// PutDocument writes or replaces the document for a translation ID and
// records its content digest. Returns the digest.
func (s *BlobStore) PutDocument(ctx context.Context, id string, data []byte) (string, error) {
	if id == "" {
		return "", storage.ErrEmptyID
	}

	digest := contentDigest(data)
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeDocumentKey(id), data); err != nil {
			return err
		}
		if err := tx.Set(makeDigestKey(id), []byte(digest)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return "", err
	}
	return digest, nil
}

// ListIDs enumerates stored translation IDs in lexicographic order.
func (s *BlobStore) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if id := documentIDFromKey(iter.Item().Key()); id != "" {
				ids = append(ids, id)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sort.Strings(ids)
	return ids, nil
}

// DeleteDocument removes the document and its digest for a translation ID.
func (s *BlobStore) DeleteDocument(ctx context.Context, id string) error {
	if id == "" {
		return storage.ErrEmptyID
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeDocumentKey(id)); errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		} else if err != nil {
			return err
		}
		if err := tx.Delete(makeDocumentKey(id)); err != nil {
			return err
		}
		if err := tx.Delete(makeDigestKey(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Digest returns the content digest recorded for a stored document.
func (s *BlobStore) Digest(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", storage.ErrEmptyID
	}

	var digest string
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDigestKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		digest = string(val)
		return nil
	}, false)
	if err != nil {
		return "", err
	}
	return digest, nil
}

// Close closes the underlying backend.
func (s *BlobStore) Close() error {
	return s.backend.Close()
}
