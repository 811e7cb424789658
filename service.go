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


package scriptura

import (
	"context"
	"log/slog"

	"github.com/poiesic/scriptura/ai"
	"github.com/poiesic/scriptura/ai/anthropic"
	"github.com/poiesic/scriptura/ai/openai"
	"github.com/poiesic/scriptura/core"
	"github.com/poiesic/scriptura/corpus"
	"github.com/poiesic/scriptura/fallback"
	"github.com/poiesic/scriptura/guidance"
	"github.com/poiesic/scriptura/search"
	"github.com/poiesic/scriptura/storage/badger"
)

// Service wires the full retrieval stack together: badger-backed
// translation storage, the tiered search orchestrator, and the guidance
// orchestrator.
type Service struct {
	backend   *badger.Backend
	store     *corpus.Store
	searcher  *search.Orchestrator
	guide     *guidance.Orchestrator
	primary   ai.Provider
	secondary ai.Provider
	logger    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig overrides the AI provider configuration.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithInMemoryStorage uses an in-memory badger backend, for tests and
// ephemeral use.
func WithInMemoryStorage() ServiceOption {
	return func(o *serviceOptions) {
		o.inMemory = true
	}
}

// NewService opens storage at filePath and assembles the search and
// guidance orchestrators. AI providers that are not configured are simply
// absent; their tiers are skipped at query time.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := slog.Default().With("component", "scriptura")

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	blob, err := badger.NewBlobStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	store, err := corpus.NewStore(blob)
	if err != nil {
		backend.Close()
		return nil, err
	}

	corpusFallback, err := fallback.Load()
	if err != nil {
		backend.Close()
		return nil, err
	}

	availability := options.aiConfig.Availability()

	var primary, secondary ai.Provider
	if availability.Primary {
		primary, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			logger.Warn("primary AI provider unavailable", "err", err)
			availability.Primary = false
		}
	}
	if availability.Secondary {
		secondary, err = anthropic.NewProvider(options.aiConfig)
		if err != nil {
			logger.Warn("secondary AI provider unavailable", "err", err)
			availability.Secondary = false
		}
	}

	searchOpts := []search.OrchestratorOption{
		search.WithProviderTimeout(options.aiConfig.RequestTimeout),
	}
	guidanceOpts := []guidance.Option{
		guidance.WithProviderTimeout(options.aiConfig.RequestTimeout),
	}
	if primary != nil {
		searchOpts = append(searchOpts, search.WithPrimaryFinder(primary.VerseFinder()))
		guidanceOpts = append(guidanceOpts, guidance.WithPrimaryGenerator(primary.GuidanceGenerator()))
	}
	if secondary != nil {
		searchOpts = append(searchOpts, search.WithSecondaryFinder(secondary.VerseFinder()))
		guidanceOpts = append(guidanceOpts, guidance.WithSecondaryGenerator(secondary.GuidanceGenerator()))
	}

	searcher, err := search.NewOrchestrator(store, corpusFallback, searchOpts...)
	if err != nil {
		backend.Close()
		return nil, err
	}

	guide, err := guidance.NewOrchestrator(corpusFallback, guidanceOpts...)
	if err != nil {
		searcher.Close()
		backend.Close()
		return nil, err
	}

	return &Service{
		backend:   backend,
		store:     store,
		searcher:  searcher,
		guide:     guide,
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}, nil
}

// Search runs the tiered verse search.
func (s *Service) Search(ctx context.Context, query string) (*search.Response, error) {
	return s.searcher.Search(ctx, query)
}

// GetGuidance produces guidance for a standalone situation.
func (s *Service) GetGuidance(ctx context.Context, situation string) (*core.GuidanceResult, error) {
	return s.guide.GetGuidance(ctx, situation)
}

// GetConversationalGuidance produces guidance within an ongoing conversation.
func (s *Service) GetConversationalGuidance(ctx context.Context, message string, history []core.Message) (*core.GuidanceResult, error) {
	return s.guide.GetConversationalGuidance(ctx, message, history)
}

// Store exposes the translation store for corpus management.
func (s *Service) Store() *corpus.Store {
	return s.store
}

// Close shuts the service down.
func (s *Service) Close() error {
	s.searcher.Close()

	if s.primary != nil {
		if err := s.primary.Close(); err != nil {
			s.logger.Error("error closing primary AI provider", "err", err)
		}
	}
	if s.secondary != nil {
		if err := s.secondary.Close(); err != nil {
			s.logger.Error("error closing secondary AI provider", "err", err)
		}
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
