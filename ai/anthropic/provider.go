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


package anthropic

import (
	"log/slog"

	"github.com/tmc/langchaingo/llms/anthropic"

	"github.com/poiesic/scriptura/ai"
)

// Provider implements ai.Provider using the Anthropic API. It serves as the
// secondary tier when the OpenAI-compatible provider is unavailable or
// fails.
type Provider struct {
	config   *ai.Config
	finder   *VerseFinder
	guidance *GuidanceGenerator
	logger   *slog.Logger
}

// NewProvider creates an AI provider backed by Anthropic.
//
// Returns the ai.Provider interface (not *Provider) to enforce abstraction.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.ValidateSecondary(); err != nil {
		return nil, err
	}

	client, err := anthropic.New(
		anthropic.WithToken(config.AnthropicToken),
		anthropic.WithModel(config.AnthropicModel),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:   config,
		finder:   &VerseFinder{client: client, logger: slog.Default().With("component", "anthropic-finder")},
		guidance: &GuidanceGenerator{client: client, logger: slog.Default().With("component", "anthropic-guidance")},
		logger:   slog.Default().With("component", "anthropic-provider"),
	}, nil
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
func (p *Provider) Close() error {
	p.logger.Debug("closing Anthropic provider")
	return nil
}
