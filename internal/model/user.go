package model

import "time"

// User mirrors a row of the `users` table. The password hash never leaves
// the repository/handler boundary; response types expose id and username
// only.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username (unique, immutable)
	PasswordHash string    // users.password_hash (bcrypt)
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
