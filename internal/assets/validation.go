package assets

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxNameLength bounds style names so they stay usable as file names.
const MaxNameLength = 64

// ValidateAssetName checks that a style name is safe to use as a file name.
// Names must be non-empty, at most MaxNameLength bytes, and free of path
// separators, dots, whitespace and control characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name longer than %d bytes", ErrInvalidAssetName, MaxNameLength)
	}
	if strings.ContainsAny(name, "/\\.") || strings.IndexFunc(name, invalidNameRune) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

func invalidNameRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
