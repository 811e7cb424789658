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
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/llms"

	"github.com/poiesic/scriptura/ai"
	"github.com/poiesic/scriptura/core"
)

// GuidanceGenerator implements ai.GuidanceGenerator using the Anthropic API.
type GuidanceGenerator struct {
	client llms.Model
	logger *slog.Logger
}

// Name identifies the provider in logs.
func (g *GuidanceGenerator) Name() string {
	return "anthropic"
}

// GenerateGuidance asks the model for structured guidance with prior
// conversation turns included.
func (g *GuidanceGenerator) GenerateGuidance(ctx context.Context, situation string, history []core.Message) (*core.GuidanceResult, error) {
	content := make([]llms.MessageContent, 0, len(history)+2)
	content = append(content, llms.MessageContent{
		Role:  llms.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextPart(guidanceSystemPrompt)},
	})
	for _, msg := range history {
		role := llms.ChatMessageTypeHuman
		if msg.Speaker == core.SpeakerTypeAI {
			role = llms.ChatMessageTypeAI
		}
		content = append(content, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(msg.Contents)},
		})
	}
	content = append(content, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(situation)},
	})

	response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.3))
	if err != nil {
		g.logger.Error("failed to generate guidance", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		g.logger.Debug("no choices returned from model")
		return nil, ai.ErrEmptyResponse
	}

	result, err := ai.ParseGuidanceResponse(response.Choices[0].Content)
	if err != nil {
		g.logger.Warn("error parsing guidance response", "err", err)
		return nil, err
	}
	return result, nil
}
