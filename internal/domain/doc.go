// Package domain defines the core business entities of the application:
// users, drugs, and vaccination records. Each entity carries its own
// construction and validation rules; persistence concerns live in the
// store packages.
package domain
