// Package client contains the remote API boundary of the SNS client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     credential exchange, registration, profiles, posts, likes and comments.
//  2. A concrete HTTP implementation (see HTTPClient) that sends JSON and
//     multipart bodies, attaches the session token as "Authorization: JWT
//     <token>", and maps response statuses to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrRejected,
// ErrUnexpectedResponse and ErrProfileNotFound.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and timeouts.
package client
