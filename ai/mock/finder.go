package mock

import (
	"context"
	"strings"

	"github.com/poiesic/scriptura/core"
)

// MockVerseFinder is a test double for ai.VerseFinder.
// It allows custom behavior injection via function fields.
type MockVerseFinder struct {
	// FindVersesFunc is called by FindVerses if set.
	// If nil, uses default deterministic behavior.
	FindVersesFunc func(ctx context.Context, query string) ([]core.SearchResult, error)

	// ProviderName overrides the reported name. Defaults to "mock".
	ProviderName string

	callCount int
}

// NewMockVerseFinder creates a mock verse finder with default deterministic
// behavior.
// Note: Returns concrete type to allow test assertions via CallCount().
func NewMockVerseFinder() *MockVerseFinder {
	return &MockVerseFinder{}
}

// FindVerses returns a deterministic single-verse result derived from the
// query, or whatever FindVersesFunc dictates.
func (m *MockVerseFinder) FindVerses(ctx context.Context, query string) ([]core.SearchResult, error) {
	m.callCount++

	if m.FindVersesFunc != nil {
		return m.FindVersesFunc(ctx, query)
	}

	return []core.SearchResult{
		{
			Reference:      "John 3:16",
			Text:           "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.",
			RelevanceScore: 0.8,
			Context:        "mock suggestion for: " + strings.TrimSpace(query),
		},
	}, nil
}

// Name identifies the mock in logs and monitoring.
func (m *MockVerseFinder) Name() string {
	if m.ProviderName != "" {
		return m.ProviderName
	}
	return "mock"
}

// CallCount returns the number of times FindVerses was called.
func (m *MockVerseFinder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockVerseFinder) Reset() {
	m.callCount = 0
	m.FindVersesFunc = nil
}
