// Package client contains client-side building blocks for the storefront.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     account endpoints of the storefront backend: Login, Register and
//     UpdateProfile.
//  2. A concrete REST implementation (see HTTPClient) that encodes request
//     bodies as JSON, tags every request with an X-Request-ID header and
//     maps HTTP status codes to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations),
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError, which keeps the status code
// and the raw body the server sent and unwraps to one of ErrUnauthorized,
// ErrBadRequest or ErrServer. Transport failures match ErrUnavailable and
// undecodable success bodies match ErrInvalidResponse.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All calls accept a context.Context
// and stop when it is cancelled; the client adds no timeouts of its own.
package client
