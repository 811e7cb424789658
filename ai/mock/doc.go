// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.VerseFinder,
// ai.GuidanceGenerator, and ai.Provider for use in unit tests. The mocks
// allow tests to run without external AI services and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	provider := mock.NewMockProvider()
//	results, err := provider.VerseFinder().FindVerses(ctx, "comfort")
//
//	// Custom behavior injection
//	finder := mock.NewMockVerseFinder()
//	finder.FindVersesFunc = func(ctx context.Context, query string) ([]core.SearchResult, error) {
//	    return nil, errors.New("provider down")
//	}
//
//	// Check call counts
//	count := finder.CallCount()
package mock
