// Package common defines shared constants and sentinel errors used across
// client and server layers of versa. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Generic failure surfaced to callers without internals.
	ErrorInternal = errors.New("internal error")

	// Account errors.
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")

	// Token errors.
	ErrMissingToken = errors.New("no token provided")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")

	// Content and ledger errors.
	ErrPostNotFound        = errors.New("post not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")

	// External identity provider failed or returned an unusable claim.
	ErrUpstreamIdentity = errors.New("identity provider failure")
)
