package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a node identifier coming from user input or a
// generator payload before it enters the engine.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node id contains control characters")
		}
	}

	return nil
}

// ValidateLabel validates a node label. Labels are rendered verbatim, so
// control characters are rejected; everything else is allowed.
func ValidateLabel(label string) error {
	const maxLabelLength = 512
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidInput, "label too long (max %d characters)", maxLabelLength)
	}
	for _, r := range label {
		if r != '\n' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains control characters")
		}
	}
	return nil
}

// ValidateRelation validates an edge relation tag against the known set.
// An empty relation is allowed and treated as "related" downstream.
func ValidateRelation(relation string, valid map[string]bool) error {
	if relation == "" {
		return nil
	}
	if !valid[relation] {
		return New(ErrCodeInvalidRelation, "unknown relation %q", relation)
	}
	return nil
}

// ValidateOutputPath validates a file path supplied for CLI output.
// It prevents path traversal outside the working tree and null bytes.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains invalid characters")
	}

	return nil
}
