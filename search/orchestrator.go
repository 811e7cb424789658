// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/scriptura/ai"
	"github.com/poiesic/scriptura/core"
	"github.com/poiesic/scriptura/corpus"
	"github.com/poiesic/scriptura/fallback"
)

const (
	// maxSearchResults caps the final response size.
	maxSearchResults = 10

	// perTranslationLimit caps matches collected from a single translation
	// during the corpus scan.
	perTranslationLimit = 10

	// defaultProviderTimeout bounds a single AI provider call.
	defaultProviderTimeout = 12 * time.Second
)

// Response is the outcome of a tiered search. UsedFallback is true whenever
// the results came from anywhere other than the local corpus tier.
type Response struct {
	Results      []core.SearchResult `json:"results"`
	UsedFallback bool                `json:"usedFallback"`
}

// Orchestrator runs the tiered search strategy: local corpus scan with
// reference parsing first, then the primary and secondary AI providers,
// then the thematic fallback corpus. Each tier is attempted only when the
// previous one produced nothing usable, and the thematic tier always
// produces something, so a search never returns empty-handed.
type Orchestrator struct {
	store           *corpus.Store
	refs            *ReferenceParser
	corpusFallback  *fallback.Corpus
	primary         ai.VerseFinder
	secondary       ai.VerseFinder
	availability    ai.ProviderAvailability
	scoring         ScoringConfig
	providerTimeout time.Duration
	pool            *ants.Pool
	logger          *slog.Logger
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator) error

// WithPrimaryFinder sets the first-choice AI verse finder.
func WithPrimaryFinder(finder ai.VerseFinder) OrchestratorOption {
	return func(o *Orchestrator) error {
		o.primary = finder
		o.availability.Primary = finder != nil
		return nil
	}
}

// WithSecondaryFinder sets the second-choice AI verse finder.
func WithSecondaryFinder(finder ai.VerseFinder) OrchestratorOption {
	return func(o *Orchestrator) error {
		o.secondary = finder
		o.availability.Secondary = finder != nil
		return nil
	}
}

// WithProviderTimeout bounds individual AI provider calls.
// Default is defaultProviderTimeout.
func WithProviderTimeout(timeout time.Duration) OrchestratorOption {
	return func(o *Orchestrator) error {
		if timeout > 0 {
			o.providerTimeout = timeout
		}
		return nil
	}
}

// WithScoringConfig overrides the relevance scoring constants.
func WithScoringConfig(cfg ScoringConfig) OrchestratorOption {
	return func(o *Orchestrator) error {
		o.scoring = cfg
		return nil
	}
}

// WithOrchestratorLogger sets a custom logger.
// Default is slog.Default().
func WithOrchestratorLogger(logger *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewOrchestrator creates a search orchestrator. The translation store and
// fallback corpus are required; AI finders are optional and their tiers are
// skipped when absent.
func NewOrchestrator(store *corpus.Store, corpusFallback *fallback.Corpus, opts ...OrchestratorOption) (*Orchestrator, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if corpusFallback == nil {
		return nil, ErrFallbackCorpusRequired
	}

	o := &Orchestrator{
		store:           store,
		refs:            NewReferenceParser(corpusFallback.References()),
		corpusFallback:  corpusFallback,
		scoring:         DefaultScoringConfig(),
		providerTimeout: defaultProviderTimeout,
		logger:          slog.Default().With("component", "search-orchestrator"),
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	o.pool = pool

	return o, nil
}

// Close releases the worker pool.
func (o *Orchestrator) Close() {
	o.pool.Release()
}

// Search runs the tiered strategy for a query.
func (o *Orchestrator) Search(ctx context.Context, query string) (*Response, error) {
	return o.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor runs the tiered strategy, emitting observability hooks
// at each transition. A nil monitor is replaced with a no-op.
func (o *Orchestrator) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor) (*Response, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	monitor.Start(query)

	// Tier 1: reference parsing plus the local corpus scan.
	results := o.searchCorpus(ctx, query, monitor)
	if len(results) > 0 {
		response := &Response{Results: results, UsedFallback: false}
		monitor.Finish(response)
		return response, nil
	}

	// Tiers 2 and 3: AI providers in priority order.
	for _, tier := range []struct {
		finder    ai.VerseFinder
		available bool
		label     string
	}{
		{o.primary, o.availability.Primary, "primary"},
		{o.secondary, o.availability.Secondary, "secondary"},
	} {
		results := o.searchProvider(ctx, query, tier.finder, tier.available, tier.label, monitor)
		if len(results) > 0 {
			response := &Response{Results: results, UsedFallback: true}
			monitor.Finish(response)
			return response, nil
		}
	}

	// Tier 4: the thematic fallback corpus always answers.
	results = o.corpusFallback.SearchByTheme(query)
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	o.logger.Info("search served from thematic fallback", "query", query, "hits", len(results))
	monitor.FallbackUsed(len(results))

	response := &Response{Results: results, UsedFallback: true}
	monitor.Finish(response)
	return response, nil
}

// searchCorpus combines exact reference hits with a parallel scan of every
// available translation. Scans run concurrently but merge in translation
// priority order, so the output is deterministic for a given store state.
func (o *Orchestrator) searchCorpus(ctx context.Context, query string, monitor SearchMonitor) []core.SearchResult {
	refHits := o.refs.FindExactReferences(query)
	if len(refHits) > 0 {
		o.logger.Debug("reference parse hit", "query", query, "hits", len(refHits))
		monitor.ReferenceHit(refHits)
	}

	ids := o.store.ListTranslations(ctx)
	scans := make([][]core.Verse, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		i, id := i, id
		wg.Add(1)
		task := func() {
			defer wg.Done()
			scans[i] = o.store.SearchTranslation(ctx, id, query, perTranslationLimit)
		}
		if err := o.pool.Submit(task); err != nil {
			// Pool exhausted or released; run inline rather than drop the scan.
			task()
		}
	}
	wg.Wait()

	seen := make(map[string]bool)
	results := make([]core.SearchResult, 0, len(refHits))
	for _, hit := range refHits {
		if seen[hit.Reference] {
			continue
		}
		seen[hit.Reference] = true
		results = append(results, hit)
	}

	for _, verses := range scans {
		for _, verse := range verses {
			reference := verse.Reference()
			if seen[reference] {
				continue
			}
			seen[reference] = true
			results = append(results, core.SearchResult{
				Reference:      reference,
				Text:           verse.Text,
				RelevanceScore: o.scoring.Score(query, verse.Text),
			})
		}
	}

	sortResults(results)
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	monitor.AfterCorpusSearch(len(results))
	return results
}

// searchProvider attempts one AI tier. Any failure mode (unavailable,
// error, empty or entirely malformed response) yields nil so the caller
// moves on.
func (o *Orchestrator) searchProvider(ctx context.Context, query string, finder ai.VerseFinder, available bool, label string, monitor SearchMonitor) []core.SearchResult {
	if finder == nil || !available {
		monitor.ProviderSkipped(label, "not configured")
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, o.providerTimeout)
	defer cancel()

	found, err := finder.FindVerses(callCtx, query)
	if err != nil {
		o.logger.Warn("verse provider failed, trying next tier", "provider", finder.Name(), "err", err)
		monitor.ProviderFailed(label, err)
		return nil
	}

	results := sanitizeResults(found)
	if len(results) == 0 {
		o.logger.Debug("verse provider returned nothing usable", "provider", finder.Name())
		monitor.ProviderFailed(label, nil)
		return nil
	}

	sortResults(results)
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	o.logger.Info("search served by AI provider", "provider", finder.Name(), "hits", len(results))
	monitor.ProviderHit(label, len(results))
	return results
}

// sanitizeResults drops malformed entries, clamps scores to [0, 1], and
// deduplicates by reference keeping the first occurrence.
func sanitizeResults(in []core.SearchResult) []core.SearchResult {
	seen := make(map[string]bool, len(in))
	out := make([]core.SearchResult, 0, len(in))
	for _, r := range in {
		r.Reference = strings.TrimSpace(r.Reference)
		r.Text = strings.TrimSpace(r.Text)
		if r.Reference == "" || r.Text == "" || seen[r.Reference] {
			continue
		}
		seen[r.Reference] = true
		if r.RelevanceScore < 0 {
			r.RelevanceScore = 0
		}
		if r.RelevanceScore > 1 {
			r.RelevanceScore = 1
		}
		out = append(out, r)
	}
	return out
}

// sortResults orders by descending relevance, breaking ties by reference so
// equal-scored results are stable across runs.
func sortResults(results []core.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		return results[i].Reference < results[j].Reference
	})
}
