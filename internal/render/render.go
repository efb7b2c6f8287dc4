// Package render turns classified blocks into an output document.
//
// A Renderer is driven in three phases: Begin with a style sheet, Emit once
// per block in source order, then Finish to obtain the encoded document.
// Two formats are available: "docx" (WordprocessingML via go-docx) and
// "html" (a standalone page built with golang.org/x/net/html). Both share
// the same sequencing rules for numbering, page breaks and skipped blocks.
package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alnah/go-md2docx/internal/blocks"
	"github.com/alnah/go-md2docx/internal/style"
)

// Output formats.
const (
	FormatDOCX = "docx"
	FormatHTML = "html"
)

var (
	// ErrState indicates a renderer method was called out of order.
	ErrState = errors.New("renderer used out of order")

	// ErrUnknownFormat indicates New was asked for an unsupported format.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Renderer consumes blocks and produces an encoded document.
type Renderer interface {
	// Begin prepares an empty document styled by sheet.
	Begin(sheet *style.Sheet) error
	// Emit appends one block.
	Emit(b blocks.Block) error
	// Finish encodes the document. The renderer cannot be reused.
	Finish() ([]byte, error)
}

// New returns a renderer for format.
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatDOCX:
		return NewDocx(), nil
	case FormatHTML:
		return NewHTML(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatDOCX, FormatHTML}
}

// IsFormat reports whether format is supported.
func IsFormat(format string) bool {
	return slices.Contains(Formats(), strings.ToLower(format))
}

// Extension returns the file extension for format, including the dot.
func Extension(format string) string {
	return "." + strings.ToLower(format)
}
