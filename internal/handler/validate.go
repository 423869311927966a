package handler

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/labstack/echo/v4"
)

// decodeBody reads the request body as a JSON object. A missing body,
// malformed JSON, or an empty object all count as "no payload".
func decodeBody(c echo.Context) (map[string]any, bool) {
	var data map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&data); err != nil {
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}
	return data, true
}

func isNonBlankString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// isPositiveInt reports whether a decoded JSON value is an integral number
// greater than zero. encoding/json decodes every number to float64.
func isPositiveInt(v any) bool {
	f, ok := v.(float64)
	return ok && f == math.Trunc(f) && f > 0
}

// validateCreate checks the payload field by field in a fixed order; the
// first failing check decides the message. Title and author are mandatory,
// year and genre are validated only when present.
func validateCreate(data map[string]any) string {
	if v, ok := data["title"]; !ok || !isNonBlankString(v) {
		return "Title is required and must be a non-empty string"
	}
	if v, ok := data["author"]; !ok || !isNonBlankString(v) {
		return "Author is required and must be a non-empty string"
	}
	if v, ok := data["year"]; ok && !isPositiveInt(v) {
		return "Year must be a positive integer"
	}
	if v, ok := data["genre"]; ok && !isNonBlankString(v) {
		return "Genre must be a non-empty string"
	}
	return ""
}

// validateUpdate applies the same rules as validateCreate but only to fields
// present in the payload. An explicit null counts as present and invalid.
func validateUpdate(data map[string]any) string {
	if v, ok := data["title"]; ok && !isNonBlankString(v) {
		return "Title must be a non-empty string"
	}
	if v, ok := data["author"]; ok && !isNonBlankString(v) {
		return "Author must be a non-empty string"
	}
	if v, ok := data["year"]; ok && !isPositiveInt(v) {
		return "Year must be a positive integer"
	}
	if v, ok := data["genre"]; ok && !isNonBlankString(v) {
		return "Genre must be a non-empty string"
	}
	return ""
}
