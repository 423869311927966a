// Package repository implements data access over the users and books tables.
// Sentinel errors defined here let handlers translate storage outcomes into
// HTTP responses without inspecting driver error strings themselves.
package repository

import "errors"

// ErrUserExists is returned when registration collides with an existing
// username. Handlers translate this into an HTTP 400 response.
var ErrUserExists = errors.New("user already exists")

// ErrUserNotFound is returned when a user lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrBookNotFound is returned when a book lookup, update or delete matches
// no row. Handlers translate this into an HTTP 404 response.
var ErrBookNotFound = errors.New("book not found")
