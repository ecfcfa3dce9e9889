// Package client talks to the projecthub HTTP API.
//
// The Client interface is the transport-agnostic contract used by the CLI;
// HTTPClient implements it with fiber's HTTP agent. Failures map onto
// sentinel errors that callers match with errors.Is: ErrUnavailable when the
// server cannot be reached, ErrUnauthorized on 401 and ErrNotFound on 404.
// Other non-2xx answers come back as *APIError carrying the server's detail.
package client
