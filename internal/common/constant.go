// Package common contains shared constants and sentinel errors used across
// filekeeper components.
package common

// AccessTokenHeaderName is the HTTP header used to carry the session token
// on every protected request.
const AccessTokenHeaderName = "x-access-token"

// RequestIDHeaderName is echoed on every response so log lines can be
// correlated with client reports.
const RequestIDHeaderName = "X-Request-ID"
