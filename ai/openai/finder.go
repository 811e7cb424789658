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
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/llms"

	"github.com/poiesic/scriptura/ai"
	"github.com/poiesic/scriptura/core"
)

// VerseFinder implements ai.VerseFinder using OpenAI-compatible chat APIs.
type VerseFinder struct {
	client llms.Model
	logger *slog.Logger
}

// Name identifies the provider in logs and search monitoring.
func (f *VerseFinder) Name() string {
	return "openai"
}

// FindVerses asks the model for verses relevant to the query and parses its
// JSON response. Malformed entries are dropped; a fully unusable response
// is an error so the caller can move to the next tier.
func (f *VerseFinder) FindVerses(ctx context.Context, query string) ([]core.SearchResult, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(verseSystemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(query)},
		},
	}

	response, err := f.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		f.logger.Error("failed to generate content", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		f.logger.Debug("no choices returned from model")
		return nil, ai.ErrEmptyResponse
	}

	results, err := ai.ParseVerseResponse(response.Choices[0].Content)
	if err != nil {
		f.logger.Warn("error parsing verse response", "err", err)
		return nil, err
	}

	f.logger.Debug("verses suggested", "query", query, "count", len(results))
	return results, nil
}
