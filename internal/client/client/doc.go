// Package client contains the client-side building blocks of the versa CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     registration, login, the account view and post management.
//  2. A gRPC implementation (see GRPCClient) that attaches the bearer token
//     through an interceptor and maps status codes back to the sentinel
//     errors in internal/common.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite file that keeps the session between runs.
//
// # Error Handling
//
// Server-side conditions come back as the sentinels of internal/common
// (ErrInsufficientCredits, ErrForbidden, ...). Transport failures are
// reported as ErrUnavailable.
package client
