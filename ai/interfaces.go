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
	"context"

	"github.com/poiesic/scriptura/core"
)

// VerseFinder suggests scripture passages relevant to a free-text query.
type VerseFinder interface {
	// FindVerses returns relevant verses for the query. An empty slice with
	// a nil error means the provider had nothing to offer; callers treat
	// that the same as a failure and move to the next tier.
	FindVerses(ctx context.Context, query string) ([]core.SearchResult, error)

	// Name identifies the provider for logging and monitoring.
	Name() string
}

// GuidanceGenerator produces structured spiritual guidance for a situation,
// optionally informed by prior conversation history.
type GuidanceGenerator interface {
	GenerateGuidance(ctx context.Context, situation string, history []core.Message) (*core.GuidanceResult, error)

	// Name identifies the provider for logging and monitoring.
	Name() string
}

// Provider bundles the capabilities of one AI backend.
type Provider interface {
	VerseFinder() VerseFinder
	GuidanceGenerator() GuidanceGenerator
	Close() error
}
