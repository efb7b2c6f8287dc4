// Package style defines the style sheet consumed by renderers.
//
// A Sheet is plain data: fonts, sizes, alignment, spacing and indents for
// each block kind, plus the list glyphs and the set of section titles that
// start on a new page. Presets ship as YAML in the assets package; custom
// sheets use the same schema.
//
// Sizes and spacing are in points. Indents are in inches.
package style

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// ErrInvalidSheet indicates a style sheet failed to decode or validate.
var ErrInvalidSheet = errors.New("invalid style sheet")

// Size limits in points.
const (
	MinSize = 1
	MaxSize = 400
)

// HeadingLevels is the number of heading styles a sheet must define.
const HeadingLevels = 3

// Alignment values.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// DefaultNumberFormat renders ordinals as "1.", "2.", ...
const DefaultNumberFormat = "%d."

// Paragraph describes how one kind of paragraph is formatted.
// Empty Family and zero Size inherit from the body style.
type Paragraph struct {
	Family      string  `yaml:"family,omitempty"`
	Size        float64 `yaml:"size,omitempty"`
	Bold        bool    `yaml:"bold,omitempty"`
	Align       string  `yaml:"align,omitempty"`
	SpaceBefore float64 `yaml:"spaceBefore,omitempty"`
	SpaceAfter  float64 `yaml:"spaceAfter,omitempty"`
	Indent      float64 `yaml:"indent,omitempty"`
}

// Code formats code blocks. Trim strips surrounding blank space from the
// block text before rendering.
type Code struct {
	Style Paragraph `yaml:"style"`
	Trim  bool      `yaml:"trim,omitempty"`
}

// Lists formats bullet, TOC and numbered items.
type Lists struct {
	Bullet       string  `yaml:"bullet"`
	NumberFormat string  `yaml:"numberFormat,omitempty"`
	Indent       float64 `yaml:"indent,omitempty"`
	Hanging      float64 `yaml:"hanging,omitempty"`
}

// PageBreaks lists Heading 1 texts that start on a new page.
type PageBreaks struct {
	Before []string `yaml:"before,omitempty"`
}

// Sheet is a complete style sheet.
type Sheet struct {
	Name       string      `yaml:"name,omitempty"`
	Body       Paragraph   `yaml:"body"`
	Title      Paragraph   `yaml:"title"`
	Headings   []Paragraph `yaml:"headings"`
	Code       Code        `yaml:"code"`
	Lists      Lists       `yaml:"lists"`
	PageBreaks PageBreaks  `yaml:"pageBreaks,omitempty"`
}

// Parse decodes a YAML style sheet and validates it.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yamlutil.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks sizes, spacing, alignment, heading count and list glyphs.
func (s *Sheet) Validate() error {
	if strings.TrimSpace(s.Body.Family) == "" {
		return fmt.Errorf("%w: body.family is required", ErrInvalidSheet)
	}
	if s.Body.Size == 0 {
		return fmt.Errorf("%w: body.size is required", ErrInvalidSheet)
	}
	if err := s.Body.validate("body"); err != nil {
		return err
	}
	if err := s.Title.validate("title"); err != nil {
		return err
	}
	if len(s.Headings) != HeadingLevels {
		return fmt.Errorf("%w: want %d headings, got %d", ErrInvalidSheet, HeadingLevels, len(s.Headings))
	}
	for i, h := range s.Headings {
		if err := h.validate(fmt.Sprintf("headings[%d]", i)); err != nil {
			return err
		}
	}
	if err := s.Code.Style.validate("code.style"); err != nil {
		return err
	}
	if s.Lists.Bullet == "" {
		return fmt.Errorf("%w: lists.bullet is required", ErrInvalidSheet)
	}
	if s.Lists.NumberFormat != "" && strings.Count(s.Lists.NumberFormat, "%d") != 1 {
		return fmt.Errorf("%w: lists.numberFormat must contain exactly one %%d", ErrInvalidSheet)
	}
	if s.Lists.Indent < 0 || s.Lists.Hanging < 0 {
		return fmt.Errorf("%w: lists indent must not be negative", ErrInvalidSheet)
	}
	return nil
}

func (p Paragraph) validate(field string) error {
	if p.Size != 0 && (p.Size < MinSize || p.Size > MaxSize) {
		return fmt.Errorf("%w: %s.size %g outside %d..%d pt", ErrInvalidSheet, field, p.Size, MinSize, MaxSize)
	}
	switch p.Align {
	case "", AlignLeft, AlignCenter, AlignRight, AlignJustify:
	default:
		return fmt.Errorf("%w: %s.align %q", ErrInvalidSheet, field, p.Align)
	}
	if p.SpaceBefore < 0 || p.SpaceAfter < 0 {
		return fmt.Errorf("%w: %s spacing must not be negative", ErrInvalidSheet, field)
	}
	if p.Indent < 0 {
		return fmt.Errorf("%w: %s.indent must not be negative", ErrInvalidSheet, field)
	}
	return nil
}

// Resolve fills the font family and size of p from the body style when unset.
func (s *Sheet) Resolve(p Paragraph) Paragraph {
	if p.Family == "" {
		p.Family = s.Body.Family
	}
	if p.Size == 0 {
		p.Size = s.Body.Size
	}
	return p
}

// Heading returns the resolved style for heading level 1..3.
// Levels outside the range are clamped.
func (s *Sheet) Heading(level int) Paragraph {
	level = min(max(level, 1), len(s.Headings))
	return s.Resolve(s.Headings[level-1])
}

// Number formats the ordinal of a numbered list item.
func (s *Sheet) Number(n int) string {
	f := s.Lists.NumberFormat
	if f == "" {
		f = DefaultNumberFormat
	}
	return fmt.Sprintf(f, n)
}

// BreaksBefore reports whether a Heading 1 with this exact text starts a new page.
func (s *Sheet) BreaksBefore(text string) bool {
	return slices.Contains(s.PageBreaks.Before, text)
}

// Clone returns a deep copy of the sheet.
func (s *Sheet) Clone() *Sheet {
	c := *s
	c.Headings = slices.Clone(s.Headings)
	c.PageBreaks.Before = slices.Clone(s.PageBreaks.Before)
	return &c
}
