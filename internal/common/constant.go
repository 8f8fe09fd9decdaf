package common

import "errors"

// AuthorizationHeaderName is the HTTP header and gRPC metadata key that
// carries the bearer token.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the token in the authorization value.
const BearerPrefix = "Bearer "

// Error codes exposed to API clients. Both transports use the same strings.
const (
	CodeEmailTaken          = "EMAIL_TAKEN"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeMissingToken        = "MISSING_TOKEN"
	CodeTokenExpired        = "TOKEN_EXPIRED"
	CodeTokenInvalid        = "TOKEN_INVALID"
	CodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	CodePostNotFound        = "POST_NOT_FOUND"
	CodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	CodeForbidden           = "FORBIDDEN"
	CodeUpstreamIdentity    = "UPSTREAM_IDENTITY_FAILURE"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInternal            = "INTERNAL"
)

// ErrorCode returns the API code for err. Unknown errors map to CodeInternal.
func ErrorCode(err error) string {
	for _, e := range codedErrors {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return CodeInternal
}

var codedErrors = []struct {
	err  error
	code string
}{
	{ErrEmailTaken, CodeEmailTaken},
	{ErrInvalidCredentials, CodeInvalidCredentials},
	{ErrMissingToken, CodeMissingToken},
	{ErrTokenExpired, CodeTokenExpired},
	{ErrTokenInvalid, CodeTokenInvalid},
	{ErrAccountNotFound, CodeAccountNotFound},
	{ErrPostNotFound, CodePostNotFound},
	{ErrInsufficientCredits, CodeInsufficientCredits},
	{ErrForbidden, CodeForbidden},
	{ErrUpstreamIdentity, CodeUpstreamIdentity},
	{ErrInvalidInput, CodeInvalidInput},
}

// ErrorForCode is the inverse of ErrorCode, used by clients to turn a wire
// code back into a sentinel. Unknown codes map to ErrorInternal.
func ErrorForCode(code string) error {
	for _, e := range codedErrors {
		if e.code == code {
			return e.err
		}
	}
	return ErrorInternal
}
