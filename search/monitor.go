package search

import "github.com/poiesic/scriptura/core"

// SearchMonitor provides hooks to observe the tiered search process.
// Implement this interface to track strategy transitions and intermediate
// results during a search.
type SearchMonitor interface {
	Start(query string)
	ReferenceHit(results []core.SearchResult)
	AfterCorpusSearch(hits int)
	ProviderSkipped(provider, reason string)
	ProviderFailed(provider string, err error)
	ProviderHit(provider string, hits int)
	FallbackUsed(hits int)
	Finish(response *Response)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string) {}
func (n *noopMonitor) ReferenceHit(_ []core.SearchResult) {}
func (n *noopMonitor) AfterCorpusSearch(_ int) {}
func (n *noopMonitor) ProviderSkipped(_, _ string) {}
func (n *noopMonitor) ProviderFailed(_ string, _ error) {}
func (n *noopMonitor) ProviderHit(_ string, _ int) {}
func (n *noopMonitor) FallbackUsed(_ int) {}
func (n *noopMonitor) Finish(_ *Response) {}
