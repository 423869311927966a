package model

import "time"

// Book mirrors a row of the `books` table. Year and Genre are optional and
// stored as NULL when absent, hence the pointer fields.
type Book struct {
	ID        uint64    // books.id
	Title     string    // books.title
	Author    string    // books.author
	Year      *int      // books.year (nullable, positive when set)
	Genre     *string   // books.genre (nullable, non-blank when set)
	CreatedAt time.Time // books.created_at
	UpdatedAt time.Time // books.updated_at
}
