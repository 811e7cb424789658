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


package guidance

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/scriptura/ai"
	"github.com/poiesic/scriptura/core"
	"github.com/poiesic/scriptura/fallback"
)

const (
	// defaultProviderTimeout bounds a single AI guidance call.
	defaultProviderTimeout = 15 * time.Second

	// historyWindow is how many trailing messages are inspected when
	// deciding whether a conversation is continuing an existing topic.
	historyWindow = 3
)

// Orchestrator produces guidance for personal situations, preferring AI
// providers and falling back to deterministic topic templates. Like search,
// guidance never fails outright; the template tier always answers.
type Orchestrator struct {
	primary         ai.GuidanceGenerator
	secondary       ai.GuidanceGenerator
	corpusFallback  *fallback.Corpus
	providerTimeout time.Duration
	logger          *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithPrimaryGenerator sets the first-choice AI guidance generator.
func WithPrimaryGenerator(gen ai.GuidanceGenerator) Option {
	return func(o *Orchestrator) error {
		o.primary = gen
		return nil
	}
}

// WithSecondaryGenerator sets the second-choice AI guidance generator.
func WithSecondaryGenerator(gen ai.GuidanceGenerator) Option {
	return func(o *Orchestrator) error {
		o.secondary = gen
		return nil
	}
}

// WithProviderTimeout bounds individual AI provider calls.
// Default is defaultProviderTimeout.
func WithProviderTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) error {
		if timeout > 0 {
			o.providerTimeout = timeout
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewOrchestrator creates a guidance orchestrator. The fallback corpus is
// required; generators are optional and their tiers are skipped when absent.
func NewOrchestrator(corpusFallback *fallback.Corpus, opts ...Option) (*Orchestrator, error) {
	if corpusFallback == nil {
		return nil, ErrFallbackCorpusRequired
	}

	o := &Orchestrator{
		corpusFallback:  corpusFallback,
		providerTimeout: defaultProviderTimeout,
		logger:          slog.Default().With("component", "guidance-orchestrator"),
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// GetGuidance produces guidance for a standalone situation.
func (o *Orchestrator) GetGuidance(ctx context.Context, situation string) (*core.GuidanceResult, error) {
	return o.GetConversationalGuidance(ctx, situation, nil)
}

// GetConversationalGuidance produces guidance for a message within an
// ongoing conversation. History informs both the AI providers and, on the
// template tier, whether the continuation variant of a template is used.
func (o *Orchestrator) GetConversationalGuidance(ctx context.Context, message string, history []core.Message) (*core.GuidanceResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	history = o.validHistory(history)

	for _, gen := range []ai.GuidanceGenerator{o.primary, o.secondary} {
		if gen == nil {
			continue
		}
		result := o.tryGenerator(ctx, gen, message, history)
		if result != nil {
			return result, nil
		}
	}

	topic := ClassifyTopic(message)
	continuing := o.topicContinues(topic, history)
	o.logger.Info("guidance served from template",
		"topic", topic,
		"continuing", continuing)
	return templateGuidance(o.corpusFallback, topic, continuing), nil
}

// tryGenerator attempts one AI tier, returning nil on any failure so the
// caller moves on.
func (o *Orchestrator) tryGenerator(ctx context.Context, gen ai.GuidanceGenerator, message string, history []core.Message) *core.GuidanceResult {
	callCtx, cancel := context.WithTimeout(ctx, o.providerTimeout)
	defer cancel()

	result, err := gen.GenerateGuidance(callCtx, message, history)
	if err != nil {
		o.logger.Warn("guidance provider failed, trying next tier", "provider", gen.Name(), "err", err)
		return nil
	}
	if result == nil || strings.TrimSpace(result.Narrative) == "" {
		o.logger.Debug("guidance provider returned nothing usable", "provider", gen.Name())
		return nil
	}

	result.UsedFallback = false
	o.logger.Info("guidance served by AI provider", "provider", gen.Name())
	return result
}

// validHistory drops malformed history entries rather than rejecting the
// call; history is advisory and guidance should still be produced.
func (o *Orchestrator) validHistory(history []core.Message) []core.Message {
	out := make([]core.Message, 0, len(history))
	for i := range history {
		if err := core.ValidateMessage(&history[i]); err != nil {
			o.logger.Debug("dropping invalid history message", "err", err)
			continue
		}
		out = append(out, history[i])
	}
	return out
}

// topicContinues reports whether recent history already touched the topic,
// which switches the template narrative to its continuation variant. A
// general topic never "continues"; there is nothing specific to continue.
func (o *Orchestrator) topicContinues(topic Topic, history []core.Message) bool {
	if topic == TopicGeneral || len(history) == 0 {
		return false
	}

	start := len(history) - historyWindow
	if start < 0 {
		start = 0
	}
	for _, msg := range history[start:] {
		if msg.Speaker != core.SpeakerTypeHuman {
			continue
		}
		if ClassifyTopic(msg.Contents) == topic {
			return true
		}
	}
	return false
}
