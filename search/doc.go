// Package search implements tiered verse search: reference parsing and a
// parallel scan of locally stored translations, then AI providers in
// priority order, and finally the built-in thematic corpus. The first tier
// to produce a usable result wins, and responses flag whether any fallback
// tier was used.
package search
