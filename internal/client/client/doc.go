// Package client talks to the filekeeper REST API.
//
// HTTPClient keeps the access token returned by Login and sends it in the
// x-access-token header on every protected call. Transport failures and
// error statuses are mapped to sentinel errors (ErrUnavailable,
// ErrUnauthorized, ErrNotFound) that callers match with errors.Is; the
// server's message is available through *APIError.
package client
