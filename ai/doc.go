// Package ai defines the provider abstractions for AI-assisted verse search
// and guidance generation, plus shared configuration and response parsing
// helpers. Concrete providers live in the openai and anthropic subpackages;
// the mock subpackage provides test doubles.
package ai
