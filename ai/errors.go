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

import "errors"

var (
	// ErrNoJSONPayload is returned when a model response contains no
	// parseable JSON structure.
	ErrNoJSONPayload = errors.New("no JSON payload in model response")

	// ErrEmptyResponse is returned when a model returns no content at all.
	ErrEmptyResponse = errors.New("empty model response")

	// ErrMalformedGuidance is returned when a guidance payload is missing
	// required fields.
	ErrMalformedGuidance = errors.New("malformed guidance payload")

	// ErrOpenAIHostRequired is returned when the OpenAI-compatible host is not configured.
	ErrOpenAIHostRequired = errors.New("OpenAI host required")

	// ErrOpenAIModelRequired is returned when the OpenAI-compatible model is not configured.
	ErrOpenAIModelRequired = errors.New("OpenAI model required")

	// ErrAnthropicTokenRequired is returned when the Anthropic API token is not configured.
	ErrAnthropicTokenRequired = errors.New("Anthropic token required")

	// ErrAnthropicModelRequired is returned when the Anthropic model is not configured.
	ErrAnthropicModelRequired = errors.New("Anthropic model required")
)
