package model

import "time"

// Role names for the `users.role` column. Exactly one admin account
// exists, provisioned by the seed; registration always creates plain
// users.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User mirrors the `users` table. Passwords are stored verbatim and
// compared exactly on login; this portal deliberately carries no
// hashing (see the repository seed rules).
//
// Fields:
//
//	Email     – unique identifier of the account.
//	Password  – plaintext credential, matched case-sensitively.
//	Name      – optional display name.
//	Role      – "user" or "admin".
//	CreatedAt – timestamp of registration or seeding.
type User struct {
	Email     string    // users.email
	Password  string    // users.password
	Name      string    // users.name
	Role      string    // users.role
	CreatedAt time.Time // users.created_at
}

// PublicUser is the user shape returned to clients. The password
// never leaves the repository layer.
type PublicUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Public strips the credential from a user record.
func (u User) Public() PublicUser {
	return PublicUser{Email: u.Email, Name: u.Name, Role: u.Role}
}
