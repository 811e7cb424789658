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


package ai

import (
	"os"
	"strings"
	"time"
)

// DefaultRequestTimeout bounds a single provider call.
const DefaultRequestTimeout = 12 * time.Second

// Config holds connection settings for the AI providers. The primary
// provider speaks the OpenAI-compatible API (a local Ollama instance works),
// the secondary is Anthropic.
type Config struct {
	OpenAIHost     string
	OpenAIModel    string
	OpenAIToken    string
	AnthropicToken string
	AnthropicModel string
	RequestTimeout time.Duration
}

// ConfigOption configures a Config.
type ConfigOption func(*Config)

// WithOpenAIHost sets the base URL of the OpenAI-compatible endpoint.
func WithOpenAIHost(host string) ConfigOption {
	return func(c *Config) { c.OpenAIHost = host }
}

// WithOpenAIModel sets the model served by the OpenAI-compatible endpoint.
func WithOpenAIModel(model string) ConfigOption {
	return func(c *Config) { c.OpenAIModel = model }
}

// WithOpenAIToken sets the API token for the OpenAI-compatible endpoint.
func WithOpenAIToken(token string) ConfigOption {
	return func(c *Config) { c.OpenAIToken = token }
}

// WithAnthropicToken sets the Anthropic API token.
func WithAnthropicToken(token string) ConfigOption {
	return func(c *Config) { c.AnthropicToken = token }
}

// WithAnthropicModel sets the Anthropic model.
func WithAnthropicModel(model string) ConfigOption {
	return func(c *Config) { c.AnthropicModel = model }
}

// WithRequestTimeout bounds individual provider calls.
func WithRequestTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		if timeout > 0 {
			c.RequestTimeout = timeout
		}
	}
}

// DefaultConfig builds a Config from environment variables, falling back to
// a local Ollama endpoint for the primary provider.
func DefaultConfig(opts ...ConfigOption) *Config {
	c := &Config{
		OpenAIHost:     envOr("SCRIPTURA_OPENAI_HOST", "http://localhost:11434/v1"),
		OpenAIModel:    envOr("SCRIPTURA_OPENAI_MODEL", "llama3.1:8b"),
		OpenAIToken:    os.Getenv("SCRIPTURA_OPENAI_TOKEN"),
		AnthropicToken: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel: envOr("SCRIPTURA_ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		RequestTimeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Normalize()
	return c
}

// Normalize cleans up host formatting. OpenAI-compatible clients expect the
// base URL to end with /v1.
func (c *Config) Normalize() {
	c.OpenAIHost = strings.TrimRight(strings.TrimSpace(c.OpenAIHost), "/")
	if c.OpenAIHost != "" && !strings.HasSuffix(c.OpenAIHost, "/v1") {
		c.OpenAIHost += "/v1"
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
}

// ValidatePrimary checks the settings the OpenAI-compatible provider needs.
func (c *Config) ValidatePrimary() error {
	if c.OpenAIHost == "" {
		return ErrOpenAIHostRequired
	}
	if c.OpenAIModel == "" {
		return ErrOpenAIModelRequired
	}
	return nil
}

// ValidateSecondary checks the settings the Anthropic provider needs.
func (c *Config) ValidateSecondary() error {
	if c.AnthropicToken == "" {
		return ErrAnthropicTokenRequired
	}
	if c.AnthropicModel == "" {
		return ErrAnthropicModelRequired
	}
	return nil
}

// ProviderAvailability reports which provider tiers are configured.
type ProviderAvailability struct {
	Primary   bool
	Secondary bool
}

// Availability inspects the config and reports which providers can be
// constructed. Missing configuration disables a tier rather than erroring;
// the search path degrades through the remaining tiers.
func (c *Config) Availability() ProviderAvailability {
	return ProviderAvailability{
		Primary:   c.OpenAIHost != "" && c.OpenAIModel != "",
		Secondary: c.AnthropicToken != "" && c.AnthropicModel != "",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
