// internal/models/user.go
package models

import "time"

// User is the session-facing identity. The id mirrors the email, matching the
// durable table's primary key.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRecord is the durable user table row. Passwords are stored only as
// bcrypt hashes.
type UserRecord struct {
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// SessionUser converts a durable record into its session representation.
func (r UserRecord) SessionUser() User {
	return User{
		ID:        r.Email,
		Email:     r.Email,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}
