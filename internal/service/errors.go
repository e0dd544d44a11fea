package service

import "errors"

// Common service-level errors.
var (
	// ErrEmptyPayload is returned when a create or update command carries
	// no data at all.
	ErrEmptyPayload = errors.New("payload cannot be empty")

	// ErrEmptyRecord is returned when a stored record comes back
	// structurally empty. This is a defensive check against a malformed
	// storage response.
	ErrEmptyRecord = errors.New("stored record is empty")
)
