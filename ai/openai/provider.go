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


package openai

import (
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/scriptura/ai"
)

// Provider implements ai.Provider using OpenAI-compatible chat services.
// A local Ollama instance exposing the /v1 API works without a token.
type Provider struct {
	config   *ai.Config
	finder   *VerseFinder
	guidance *GuidanceGenerator
	logger   *slog.Logger
}

// NewProvider creates an AI provider backed by an OpenAI-compatible service.
//
// Returns the ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.ValidatePrimary(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:   config,
		finder:   &VerseFinder{client: client, logger: slog.Default().With("component", "openai-finder")},
		guidance: &GuidanceGenerator{client: client, logger: slog.Default().With("component", "openai-guidance")},
		logger:   slog.Default().With("component", "openai-provider"),
	}, nil
}

// newClient builds the shared chat client.
// Use "none" as token for local OpenAI-compatible services that don't require authentication.
func newClient(config *ai.Config) (llms.Model, error) {
	token := config.OpenAIToken
	if token == "" {
		token = "none"
	}
	return openai.New(
		openai.WithBaseURL(config.OpenAIHost),
		openai.WithToken(token),
		openai.WithModel(config.OpenAIModel),
	)
}

// VerseFinder returns the verse search service.
func (p *Provider) VerseFinder() ai.VerseFinder {
	return p.finder
}

// GuidanceGenerator returns the guidance generation service.
func (p *Provider) GuidanceGenerator() ai.GuidanceGenerator {
	return p.guidance
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying client doesn't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
