// Package store defines the persistence interfaces for the application's
// entities together with the sentinel errors store implementations return.
// Concrete implementations live in internal/platform/postgres.
package store
