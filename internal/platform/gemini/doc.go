// Package gemini provides an implementation of the generation.Provider interface
// that uses Google's Gemini API for generating learning pathways.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's generation logic to Google's external Gemini AI
// service. It translates between generation.Request and the genai SDK, and
// categorizes API errors into the generation package's sentinel errors:
//
//   - 401/403 and rejected API keys map to generation.ErrInvalidAPIKey
//   - 429 maps to generation.ErrRateLimited
//   - 5xx and network failures map to generation.ErrProviderUnavailable
//   - safety blocks map to generation.ErrContentBlocked
//
// The package depends on Google's google.golang.org/genai client library.
package gemini
