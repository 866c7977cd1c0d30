// Package generation provides interfaces and implementations for interacting
// with external AI/LLM services for content generation. It abstracts the
// details of LLM API integration (Gemini, OpenAI, Anthropic), allowing the
// application to request learning pathways without coupling to a specific
// external service.
//
// The Recommender is the boundary: every outcome, including provider panics,
// is returned as a Result carrying either topics or a classified *Error.
package generation
