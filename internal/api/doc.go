// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the internal application services, translating HTTP concerns to
// business operations.
//
// Handlers never return raw internal errors: storage failures are logged
// with redaction and answered with a safe message, and AI generation
// failures are reported in the response body as a kind plus message.
package api
