// Package corpus provides the translation store: lazy loading, TTL caching,
// and degraded-mode fallbacks over the blob backend.
//
// The cache is the only shared mutable state in the system. Population is
// idempotent (re-fetching and re-storing the same translation is harmless),
// so a plain last-write-wins map under a mutex is sufficient; no transactions
// are needed since writes are whole-document replacements.
package corpus
