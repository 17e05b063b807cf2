// Package repository defines error types that are reused across
// multiple repositories. These sentinel values allow higher layers
// such as handlers to distinguish between different failure
// scenarios: a duplicate registration, a bad login, a status update
// against an unknown complaint, or an attempt to remove the seeded
// admin account. Anything else bubbling out of a repository is a
// storage failure and is treated as unexpected.
package repository

import "errors"

// ErrEmailExists is returned when registering an email that already
// has an account. Handlers should translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidCredentials is returned when no user record matches the
// given email/password pair exactly. Handlers should translate this
// into HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound is returned when an operation references a complaint
// id that does not exist. Handlers should translate this into
// HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrAdminProtected is returned when a delete targets the seeded
// admin account, which must never be removable. Handlers should
// translate this into HTTP 403.
var ErrAdminProtected = errors.New("admin account is protected")
