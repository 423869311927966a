package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iremar/book-catalog-api/internal/model"
	"github.com/iremar/book-catalog-api/internal/utils"
)

// UserRepo persists users. Plaintext passwords enter Create only and are
// hashed before touching the database.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts the user, returning the new ID.
// A duplicate username yields ErrUserExists.
func (r *UserRepo) Create(ctx context.Context, username, password string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?,?)",
		username, hash)
	if err != nil {
		// 1062 = MySQL duplicate entry
		if strings.Contains(err.Error(), "1062") {
			return 0, ErrUserExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,created_at,updated_at FROM users WHERE username=? LIMIT 1",
		strings.TrimSpace(username)).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}
