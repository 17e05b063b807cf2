package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/city-issue-tracker/internal/model"
)

// Seeded administrator account. The portal guarantees this record
// always exists and always carries exactly these credentials: the
// seed recreates it when missing and rewrites the password whenever
// it has drifted from the fixed value.
const (
	AdminEmail    = "admin@123"
	AdminPassword = "ad"
	AdminName     = "System Admin"
)

// UserRepo provides access to the `users` collection. Emails are the
// primary identifier and are matched exactly, case-sensitively, both
// on registration and on login.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a new user record with role "user". The password is
// stored verbatim. Returns ErrEmailExists on a duplicate email; the
// collection is left unchanged in that case.
func (r *UserRepo) Create(ctx context.Context, email, password, name string) (model.User, error) {
	u := model.User{Email: email, Password: password, Name: name, Role: model.RoleUser}
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password, name, role) VALUES (?,?,?,?)",
		u.Email, u.Password, u.Name, u.Role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return u, nil
}

// Verify checks a login attempt against the stored records. It
// succeeds only when a record's email and password both match the
// given values exactly; any mismatch is ErrInvalidCredentials, never
// a hint about which half was wrong.
func (r *UserRepo) Verify(ctx context.Context, email, password string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT email,password,name,role,created_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.Email, &u.Password, &u.Name, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, err
	}
	// Exact comparison in Go as well, so the contract holds even when
	// the column collation is case-insensitive.
	if u.Email != email || u.Password != password {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// List returns every user record ordered by registration time.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT email,password,name,role,created_at FROM users ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Email, &u.Password, &u.Name, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Delete removes a user by email. The seeded admin account is
// protected: deleting it returns ErrAdminProtected and leaves the
// record in place. Deleting an unknown email is a no-op.
func (r *UserRepo) Delete(ctx context.Context, email string) error {
	if email == AdminEmail {
		return ErrAdminProtected
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE email=?", email)
	return err
}

// EnsureAdmin provisions the fixed admin account. Called once at
// startup: inserts the record when absent, and resets the password
// column back to the fixed value when it has drifted. Idempotent.
func (r *UserRepo) EnsureAdmin(ctx context.Context) error {
	var stored string
	err := r.DB.QueryRowContext(ctx,
		"SELECT password FROM users WHERE email=? LIMIT 1", AdminEmail).Scan(&stored)
	switch {
	case err == sql.ErrNoRows:
		_, err = r.DB.ExecContext(ctx,
			"INSERT INTO users (email, password, name, role) VALUES (?,?,?,?)",
			AdminEmail, AdminPassword, AdminName, model.RoleAdmin)
		return err
	case err != nil:
		return err
	case stored != AdminPassword:
		_, err = r.DB.ExecContext(ctx,
			"UPDATE users SET password=? WHERE email=?", AdminPassword, AdminEmail)
		return err
	}
	return nil
}
