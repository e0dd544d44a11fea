// Package postgres contains the PostgreSQL implementations of the store
// interfaces, built on pgx. Unique-violation and no-rows conditions are
// translated into the store package's sentinel errors so callers never
// depend on driver error types.
package postgres
