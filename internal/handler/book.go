// Package handler contains the HTTP handlers of the service.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iremar/book-catalog-api/internal/model"
	"github.com/iremar/book-catalog-api/internal/repository"
)

// BookHandler bundles dependencies for the book CRUD endpoints.
type BookHandler struct {
	Books *repository.BookRepo
	Log   *logrus.Logger
}

func NewBookHandler(books *repository.BookRepo, log *logrus.Logger) *BookHandler {
	return &BookHandler{Books: books, Log: log}
}

// bookJSON is the wire form of a book: always exactly these five fields,
// with year and genre serialized as null when unset.
type bookJSON struct {
	ID     uint64  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Year   *int    `json:"year"`
	Genre  *string `json:"genre"`
}

func toBookJSON(b model.Book) bookJSON {
	return bookJSON{ID: b.ID, Title: b.Title, Author: b.Author, Year: b.Year, Genre: b.Genre}
}

// parseBookID reads the :id path parameter. Anything non-numeric names no
// resource, so callers answer 404 rather than 400.
func parseBookID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// List handles GET /books. An empty catalog answers 404 with a message;
// this mirrors the observable contract of the service, unusual as it is.
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.Books.List(c.Request().Context())
	if err != nil {
		h.Log.WithError(err).Error("list books failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if len(books) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No books available"})
	}

	out := make([]bookJSON, len(books))
	for i := range books {
		out[i] = toBookJSON(books[i])
	}
	return c.JSON(http.StatusOK, echo.Map{"books": out})
}

// Get handles GET /books/:id.
func (h *BookHandler) Get(c echo.Context) error {
	id, ok := parseBookID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
	}
	book, err := h.Books.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
		}
		h.Log.WithError(err).Error("get book failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book successfully found", "book": toBookJSON(book)})
}

// Create handles POST /books.
func (h *BookHandler) Create(c echo.Context) error {
	data, ok := decodeBody(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Request body is missing"})
	}
	if msg := validateCreate(data); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	book := model.Book{
		Title:  data["title"].(string),
		Author: data["author"].(string),
	}
	if v, ok := data["year"]; ok {
		y := int(v.(float64))
		book.Year = &y
	}
	if v, ok := data["genre"]; ok {
		g := v.(string)
		book.Genre = &g
	}

	if err := h.Books.Create(c.Request().Context(), &book); err != nil {
		h.Log.WithError(err).Error("create book failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Book created successfully", "book": toBookJSON(book)})
}

// Update handles PUT and PATCH /books/:id. Only fields present in the
// payload are validated and applied; everything else keeps its prior value.
func (h *BookHandler) Update(c echo.Context) error {
	id, ok := parseBookID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
	}
	book, err := h.Books.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
		}
		h.Log.WithError(err).Error("get book failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	data, ok := decodeBody(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Request body is missing"})
	}
	if msg := validateUpdate(data); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	if v, ok := data["title"]; ok {
		book.Title = v.(string)
	}
	if v, ok := data["author"]; ok {
		book.Author = v.(string)
	}
	if v, ok := data["year"]; ok {
		y := int(v.(float64))
		book.Year = &y
	}
	if v, ok := data["genre"]; ok {
		g := v.(string)
		book.Genre = &g
	}

	if err := h.Books.Update(c.Request().Context(), &book); err != nil {
		h.Log.WithError(err).Error("update book failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully updated", "book": toBookJSON(book)})
}

// Delete handles DELETE /books/:id.
func (h *BookHandler) Delete(c echo.Context) error {
	id, ok := parseBookID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
	}
	if err := h.Books.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
		}
		h.Log.WithError(err).Error("delete book failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book successfully deleted"})
}
