// Package api provides the HTTP handlers for the API: auth, drugs, and
// vaccination endpoints, together with request validation and the mapping
// from internal errors to HTTP status codes.
package api
