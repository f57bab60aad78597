// Package api contains the client-side gateway to the Glossy backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication, profile, content buckets, categories, and onboarding.
//  2. A concrete REST/JSON implementation (see HTTPClient) that attaches the
//     current bearer token to every request, tags requests with an
//     X-Request-Id, retries transient network failures with backoff, and
//     special-cases 401 responses with a one-shot session-revocation hook.
//
// # Error Handling
//
// Failures are classified into three conditions callers can match:
//
//   - ErrUnavailable (errors.Is) — no response reached the client;
//   - ErrUnauthorized (errors.Is) — the server answered 401; the revocation
//     hook has already fired by the time the caller sees this error;
//   - *StatusError (errors.As) — any other non-2xx response, carrying the
//     HTTP status and the server's message.
//
// Callers never receive partial response data together with an error.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
