package errors

import (
	"strings"
	"unicode"
)

// Limits enforced at the boundaries (CLI flags, HTTP requests) before a grid
// is built. The solver itself only rejects grids that cannot be solved.
const (
	// MaxDimension is the largest grid side accepted from untrusted input.
	MaxDimension = 2048

	// MaxWeightLimit is the largest per-cell weight accepted from untrusted input.
	MaxWeightLimit = 1_000_000
)

// ValidateDimension checks a requested grid side length n against [1, limit].
// A non-positive limit means MaxDimension.
func ValidateDimension(n, limit int) error {
	if limit <= 0 {
		limit = MaxDimension
	}
	if n < 1 {
		return New(ErrCodeInvalidInput, "grid size must be at least 1, got %d", n)
	}
	if n > limit {
		return New(ErrCodeInvalidInput, "grid size too large: %d (max %d)", n, limit)
	}
	return nil
}

// ValidateMaxWeight checks the upper bound used for randomly generated weights.
func ValidateMaxWeight(w int) error {
	if w < 0 {
		return New(ErrCodeInvalidInput, "max weight must be non-negative, got %d", w)
	}
	if w > MaxWeightLimit {
		return New(ErrCodeInvalidInput, "max weight too large: %d (max %d)", w, MaxWeightLimit)
	}
	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
