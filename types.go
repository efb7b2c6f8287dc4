package md2docx

import (
	"log/slog"
	"slices"

	"github.com/alnah/go-md2docx/internal/blocks"
	"github.com/alnah/go-md2docx/internal/render"
)

// Input contains conversion parameters.
type Input struct {
	Source string // Raw source text. Empty input yields an empty document.
}

// BlockKind identifies a classified block type.
type BlockKind = blocks.Kind

// Block kinds reported in ConvertResult.Counts.
const (
	KindTitle     = blocks.KindTitle
	KindHeading   = blocks.KindHeading
	KindCode      = blocks.KindCode
	KindBullet    = blocks.KindBullet
	KindNumbered  = blocks.KindNumbered
	KindTOC       = blocks.KindTOC
	KindParagraph = blocks.KindParagraph
)

// Output formats.
const (
	FormatDOCX = render.FormatDOCX
	FormatHTML = render.FormatHTML
)

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	Document []byte            // Encoded output document
	Format   string            // "docx" or "html"
	Blocks   int               // Number of classified blocks
	Counts   map[BlockKind]int // Blocks per kind
	Headings [3]int            // Headings per level, index 0 is level 1
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	styleInput    string // preset name or YAML path
	assetPath     string // custom style directory
	format        string
	pageBreaks    []string
	pageBreaksSet bool
	verify        bool
}

// WithStyle selects the style sheet: a preset name ("styled", "simple"),
// a custom sheet name resolved through WithAssetPath, or a path to a YAML
// file (detected by the presence of a path separator).
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}

// WithAssetPath sets a directory holding custom style sheets under
// styles/{name}.yaml. Missing sheets fall back to the built-in presets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithFormat selects the output format: "docx" (default) or "html".
func WithFormat(format string) Option {
	return func(c *Converter) {
		c.cfg.format = format
	}
}

// WithPageBreaks replaces the style sheet's list of Heading 1 titles that
// start on a new page. An empty list disables page breaks.
func WithPageBreaks(titles []string) Option {
	return func(c *Converter) {
		c.cfg.pageBreaks = slices.Clone(titles)
		c.cfg.pageBreaksSet = true
	}
}

// WithVerify re-reads rendered docx output and checks that every title and
// heading survived. A mismatch fails the conversion with ErrRender.
func WithVerify(verify bool) Option {
	return func(c *Converter) {
		c.cfg.verify = verify
	}
}

// WithLogger sets the logger for conversion diagnostics.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}
