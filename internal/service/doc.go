// Package service implements the business rules layered on top of raw
// persistence for each resource: existence checks, the empty-result policy,
// the post-update re-fetch, and delete confirmation payloads.
package service
