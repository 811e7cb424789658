package mock

import (
	"context"

	"github.com/poiesic/scriptura/core"
)

// MockGuidanceGenerator is a test double for ai.GuidanceGenerator.
// It allows custom behavior injection via function fields.
type MockGuidanceGenerator struct {
	// GenerateGuidanceFunc is called by GenerateGuidance if set.
	// If nil, uses default deterministic behavior.
	GenerateGuidanceFunc func(ctx context.Context, situation string, history []core.Message) (*core.GuidanceResult, error)

	// ProviderName overrides the reported name. Defaults to "mock".
	ProviderName string

	callCount int
}

// NewMockGuidanceGenerator creates a mock guidance generator with default
// deterministic behavior.
func NewMockGuidanceGenerator() *MockGuidanceGenerator {
	return &MockGuidanceGenerator{}
}

// GenerateGuidance returns a fixed structured guidance result, or whatever
// GenerateGuidanceFunc dictates.
func (m *MockGuidanceGenerator) GenerateGuidance(ctx context.Context, situation string, history []core.Message) (*core.GuidanceResult, error) {
	m.callCount++

	if m.GenerateGuidanceFunc != nil {
		return m.GenerateGuidanceFunc(ctx, situation, history)
	}

	return &core.GuidanceResult{
		Narrative: "Mock guidance for: " + situation,
		Verses: []core.SearchResult{
			{
				Reference:      "Philippians 4:13",
				Text:           "I can do all things through Christ which strengtheneth me.",
				RelevanceScore: 0.8,
			},
		},
		Steps:  []string{"Take a quiet moment to reflect.", "Talk to someone you trust."},
		Prayer: "A short mock prayer.",
	}, nil
}

// Name identifies the mock in logs.
func (m *MockGuidanceGenerator) Name() string {
	if m.ProviderName != "" {
		return m.ProviderName
	}
	return "mock"
}

// CallCount returns the number of times GenerateGuidance was called.
func (m *MockGuidanceGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockGuidanceGenerator) Reset() {
	m.callCount = 0
	m.GenerateGuidanceFunc = nil
}
