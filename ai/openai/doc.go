// Package openai provides the primary AI provider, speaking the
// OpenAI-compatible chat API. It works against OpenAI itself or any
// compatible local service such as Ollama.
package openai
