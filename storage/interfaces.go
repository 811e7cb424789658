package storage

import "context"

// BlobStore provides access to the content-addressed blob backend holding one
// immutable JSON document per translation.
// Implementations must be thread-safe and support concurrent access.
type BlobStore interface {
	// GetDocument retrieves the raw JSON document for a translation ID.
	// Returns ErrNotFound if no document exists for the ID.
	GetDocument(ctx context.Context, id string) ([]byte, error)

	// PutDocument writes or replaces the document for a translation ID.
	// Writes are whole-document replacements; no partial updates.
	// Returns the content digest of the stored document.
	PutDocument(ctx context.Context, id string, data []byte) (string, error)

	// ListIDs enumerates the translation IDs currently stored, in
	// lexicographic order.
	ListIDs(ctx context.Context) ([]string, error)

	// DeleteDocument removes the document for a translation ID.
	// Returns ErrNotFound if no document exists for the ID.
	DeleteDocument(ctx context.Context, id string) error

	// Digest returns the content digest recorded for a stored document.
	// Returns ErrNotFound if no document exists for the ID.
	Digest(ctx context.Context, id string) (string, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
