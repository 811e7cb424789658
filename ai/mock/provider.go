package mock

import "github.com/poiesic/scriptura/ai"

// MockProvider is a test double for ai.Provider that aggregates the mock
// finder and guidance generator.
type MockProvider struct {
	finder   *MockVerseFinder
	guidance *MockGuidanceGenerator
}

// NewMockProvider creates a provider whose services use default
// deterministic behavior.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		finder:   NewMockVerseFinder(),
		guidance: NewMockGuidanceGenerator(),
	}
}

// VerseFinder returns the mock verse finder as the interface type.
func (p *MockProvider) VerseFinder() ai.VerseFinder {
	return p.finder
}

// GuidanceGenerator returns the mock guidance generator as the interface type.
func (p *MockProvider) GuidanceGenerator() ai.GuidanceGenerator {
	return p.guidance
}

// GetMockVerseFinder returns the concrete mock for test assertions.
func (p *MockProvider) GetMockVerseFinder() *MockVerseFinder {
	return p.finder
}

// GetMockGuidanceGenerator returns the concrete mock for test assertions.
func (p *MockProvider) GetMockGuidanceGenerator() *MockGuidanceGenerator {
	return p.guidance
}

// Close is a no-op.
func (p *MockProvider) Close() error {
	return nil
}
