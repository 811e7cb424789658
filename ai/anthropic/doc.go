// Package anthropic provides the secondary AI provider, backed by the
// Anthropic API.
package anthropic
