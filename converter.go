package md2docx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/blocks"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/pipeline"
	"github.com/alnah/go-md2docx/internal/render"
	"github.com/alnah/go-md2docx/internal/style"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Converter turns source text into a styled document.
// A Converter is immutable after construction and safe for concurrent use.
type Converter struct {
	cfg    converterConfig
	logger *slog.Logger
	sheet  *style.Sheet

	preprocessor pipeline.SourcePreprocessor
	newRenderer  func(format string) (render.Renderer, error)
}

// NewConverter creates a Converter with the given options.
// The style sheet is resolved and validated here so that Convert only
// fails on I/O or rendering.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			styleInput: assets.DefaultStyleName,
			format:     FormatDOCX,
		},
		logger:       slog.New(slog.DiscardHandler),
		preprocessor: &pipeline.TextPreprocessor{},
		newRenderer:  render.New,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !render.IsFormat(c.cfg.format) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.cfg.format)
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssetPath, err)
	}

	sheet, err := resolveStyle(resolver, c.cfg.styleInput)
	if err != nil {
		return nil, err
	}
	if c.cfg.pageBreaksSet {
		sheet = sheet.Clone()
		sheet.PageBreaks.Before = c.cfg.pageBreaks
	}
	c.sheet = sheet

	return c, nil
}

// resolveStyle loads a style sheet from a file path or a preset name.
// An empty input selects the default preset.
func resolveStyle(resolver *assets.AssetResolver, input string) (*style.Sheet, error) {
	if input == "" {
		input = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		data, err := yamlutil.ReadFile(input)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrStyleNotFound, input)
			}
			return nil, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
		}
		sheet, err := style.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidStyle, input, err)
		}
		return sheet, nil
	}

	sheet, err := resolver.LoadSheet(input)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrStyleNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}
	return sheet, nil
}

// Sheet returns a copy of the resolved style sheet.
func (c *Converter) Sheet() *style.Sheet {
	return c.sheet.Clone()
}

// Format returns the output format.
func (c *Converter) Format() string {
	return c.cfg.format
}

// Convert classifies the source and renders it.
// Classification never fails; errors come from rendering or cancellation.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: internal error: %v", ErrRender, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := c.preprocessor.Lines(ctx, input.Source)

	renderer, err := c.newRenderer(c.cfg.format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	if err := renderer.Begin(c.sheet); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	result = &ConvertResult{
		Format: c.cfg.format,
		Counts: make(map[BlockKind]int),
	}
	var trail outline
	for b := range blocks.Classify(lines) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := renderer.Emit(b); err != nil {
			return nil, fmt.Errorf("%w: %s at line %d: %w", ErrRender, b.Kind, b.Start+1, err)
		}
		result.Blocks++
		result.Counts[b.Kind]++
		if b.Kind == blocks.KindHeading {
			result.Headings[clampLevel(b.Level)-1]++
		}
		trail.add(b)
	}

	doc, err := renderer.Finish()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	result.Document = doc

	if c.cfg.verify && c.cfg.format == FormatDOCX {
		if err := trail.verify(doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRender, err)
		}
	}

	c.logger.Debug("document rendered",
		slog.String("style", c.sheet.Name),
		slog.Int("blocks", result.Blocks),
		slog.Int("headings", result.Counts[KindHeading]),
		slog.Int("bytes", len(doc)))
	c.logger.Info("conversion complete", slog.String("format", result.Format))

	return result, nil
}

// ConvertFile reads inputPath, converts it and writes the document to
// outputPath. The output is written atomically: a failed run never leaves
// a truncated file behind.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) (*ConvertResult, error) {
	source, err := readSource(inputPath)
	if err != nil {
		return nil, err
	}

	result, err := c.Convert(ctx, Input{Source: source})
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(outputPath, result.Document, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	c.logger.Debug("document written", slog.String("path", outputPath))
	return result, nil
}

// readSource reads a UTF-8 source file.
func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadSource, path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: not valid UTF-8", ErrReadSource, path)
	}
	return string(data), nil
}

// clampLevel keeps heading levels within 1..3.
func clampLevel(level int) int {
	return min(max(level, 1), style.HeadingLevels)
}
