// Package common contains shared constants and helpers used across
// the SNS clone client components.
package common

const (
	// AuthHeaderName is the HTTP header carrying the session credential.
	AuthHeaderName = "Authorization"

	// AuthScheme prefixes the credential in AuthHeaderName ("JWT <token>").
	AuthScheme = "JWT"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// DefaultNickName is given to the profile created right after registration.
	DefaultNickName = "anonymous"
)
