package pipeline

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-md2docx/internal/blocks"
)

// byteOrderMark is the UTF-8 encoding of U+FEFF.
const byteOrderMark = "\uFEFF"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// SourcePreprocessor defines the contract for source text preprocessing.
type SourcePreprocessor interface {
	Normalize(ctx context.Context, content string) string
	Lines(ctx context.Context, content string) []string
}

// TextPreprocessor prepares raw source text for block classification.
type TextPreprocessor struct{}

// Compile-time interface check.
var _ SourcePreprocessor = (*TextPreprocessor)(nil)

// Normalize applies all transformations to prepare source text for splitting.
func (p *TextPreprocessor) Normalize(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = stripByteOrderMark(content)
	content = normalizeLineEndings(content)
	content = normalizeUnicode(content)
	return content
}

// Lines normalizes content and splits it into classifier input lines.
func (p *TextPreprocessor) Lines(ctx context.Context, content string) []string {
	return blocks.Split(p.Normalize(ctx, content))
}

// stripByteOrderMark drops a leading BOM so the title rule sees the marker.
func stripByteOrderMark(content string) string {
	return strings.TrimPrefix(content, byteOrderMark)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// normalizeUnicode composes the text to NFC so that marker prefixes written
// in decomposed form compare equal to their composed literals.
func normalizeUnicode(content string) string {
	if norm.NFC.IsNormalString(content) {
		return content
	}
	return norm.NFC.String(content)
}
