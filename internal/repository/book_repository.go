package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iremar/book-catalog-api/internal/model"
)

const bookColumns = "id,title,author,year,genre,created_at,updated_at"

// BookRepo persists books.
type BookRepo struct{ DB *sql.DB }

func NewBookRepo(db *sql.DB) *BookRepo { return &BookRepo{DB: db} }

// List returns every book ordered by id.
func (r *BookRepo) List(ctx context.Context) ([]model.Book, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+bookColumns+" FROM books ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Genre, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// GetByID fetches a single book.
func (r *BookRepo) GetByID(ctx context.Context, id uint64) (model.Book, error) {
	var b model.Book
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+bookColumns+" FROM books WHERE id=? LIMIT 1", id).
		Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Genre, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Book{}, ErrBookNotFound
	}
	return b, err
}

// Create inserts the book and fills in its assigned ID.
func (r *BookRepo) Create(ctx context.Context, b *model.Book) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO books (title, author, year, genre) VALUES (?,?,?,?)",
		b.Title, b.Author, b.Year, b.Genre)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// Update writes all mutable columns of the book. Callers resolve the current
// row first and apply partial changes to it, so an update that leaves values
// unchanged is still a success here.
func (r *BookRepo) Update(ctx context.Context, b *model.Book) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE books SET title=?, author=?, year=?, genre=? WHERE id=?",
		b.Title, b.Author, b.Year, b.Genre, b.ID)
	return err
}

// Delete removes the book, reporting ErrBookNotFound when no row matched.
func (r *BookRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM books WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookNotFound
	}
	return nil
}
