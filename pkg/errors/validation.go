package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateNodeID validates a node identifier for safety and correctness.
// It rejects identifiers that could be used for path traversal or injection
// when IDs end up in cache keys and file names.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNode, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNode, "node id too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNode, "node id contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidNode, "node id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateLayoutType validates a layout strategy name. Unknown names are an
// error at the API and CLI boundary even though the engine itself degrades
// them to the balanced strategy.
func ValidateLayoutType(kind string) error {
	switch kind {
	case "balanced", "tree", "radial":
		return nil
	case "":
		return New(ErrCodeInvalidLayout, "layout type cannot be empty")
	default:
		return New(ErrCodeInvalidLayout, "unknown layout type: %q (expected balanced, tree or radial)", kind)
	}
}

// ValidateCanvas validates canvas dimensions. Zero dimensions are allowed
// (the engine anchors at the origin), negative ones are not.
func ValidateCanvas(width, height float64) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidCanvas, "canvas dimensions cannot be negative: %gx%g", width, height)
	}
	const maxCanvas = 1 << 20
	if width > maxCanvas || height > maxCanvas {
		return New(ErrCodeInvalidCanvas, "canvas dimensions too large (max %d)", maxCanvas)
	}
	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// documentIDRegex matches document identifiers: UUIDs and short slugs.
var documentIDRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ValidateDocumentID validates a stored document identifier.
func ValidateDocumentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "document id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "document id too long (max 64 characters)")
	}
	if !documentIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid document id: %q", id)
	}
	return nil
}
