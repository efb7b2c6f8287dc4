// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// configDirName is the per-user config directory searched by the CLI.
const configDirName = "go-md2docx"

// ForSourceNotFound returns a hint for a missing source document.
func ForSourceNotFound(path string) string {
	if filepath.IsAbs(path) {
		return format("check the path passed to --input")
	}
	return format("run from the directory containing " + path + " or pass --input")
}

// ForInvalidEncoding returns a hint for source files that are not UTF-8.
func ForInvalidEncoding() string {
	return format("save the source file as UTF-8")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), configDirName+"/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidStyle returns a hint for style sheets that fail validation.
func ForInvalidStyle() string {
	return format("run with --print-style to see a complete sheet")
}

// ForUnsupportedFormat lists the accepted output formats.
func ForUnsupportedFormat(formats []string) string {
	if len(formats) == 0 {
		return ""
	}
	return format("use one of: " + strings.Join(formats, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
