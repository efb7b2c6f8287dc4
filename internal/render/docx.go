package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fumiama/go-docx"

	"github.com/alnah/go-md2docx/internal/blocks"
	"github.com/alnah/go-md2docx/internal/style"
)

// Paragraph style ids written to w:pStyle.
const (
	StyleNormal     = "Normal"
	StyleTitle      = "Title"
	StyleHeading    = "Heading"
	StyleCode       = "Code"
	StyleListBullet = "ListBullet"
	StyleListNumber = "ListNumber"
)

// listSeparator sits between a list marker and the item text. The hanging
// indent acts as the tab stop.
const listSeparator = "\t"

// HeadingStyle returns the style id of heading level 1..3.
func HeadingStyle(level int) string {
	return StyleHeading + strconv.Itoa(level)
}

// DocxRenderer writes WordprocessingML documents.
//
// The bundled go-docx theme has no heading or list styles, so every run
// carries its font, size and weight directly. Style ids are still written
// so that the structure survives a round trip.
//
// Word falls back to Normal for the undefined Heading1..3 ids, so headings
// carry no outline level: they do not appear in the navigation pane or in
// a TOC field generated by Word. The rendered TOC entries are unaffected.
type DocxRenderer struct {
	seq sequencer
	doc *docx.Docx

	// spaceAfter of the previous paragraph, in points. go-docx cannot write
	// w:after, so it is folded into the next paragraph's w:before.
	spaceAfter float64
}

// NewDocx returns a DocxRenderer.
func NewDocx() *DocxRenderer {
	return &DocxRenderer{}
}

// Begin starts an empty document with the default theme.
func (r *DocxRenderer) Begin(sheet *style.Sheet) error {
	if err := r.seq.begin(sheet); err != nil {
		return err
	}
	r.doc = docx.New().WithDefaultTheme()
	return nil
}

// Emit appends the paragraphs for b.
func (r *DocxRenderer) Emit(b blocks.Block) error {
	st, err := r.seq.next(b)
	if err != nil {
		return err
	}
	if st.Skip {
		return nil
	}
	if st.PageBreak {
		r.doc.AddParagraph().AddPageBreaks()
		r.spaceAfter = 0
	}

	sheet := r.seq.sheet
	switch st.Kind {
	case blocks.KindTitle:
		r.write(StyleTitle, sheet.Title, st.Text, paragraphOptions{})
	case blocks.KindHeading:
		level := clampLevel(st.Level)
		r.write(HeadingStyle(level), sheet.Headings[level-1], st.Text, paragraphOptions{})
	case blocks.KindCode:
		r.write(StyleCode, sheet.Code.Style, st.Text, paragraphOptions{preserveSpace: true})
	case blocks.KindBullet, blocks.KindTOC:
		r.write(StyleListBullet, r.listStyle(), sheet.Lists.Bullet+listSeparator+st.Text, paragraphOptions{hanging: sheet.Lists.Hanging})
	case blocks.KindNumbered:
		r.write(StyleListNumber, r.listStyle(), sheet.Number(st.Number)+listSeparator+st.Text, paragraphOptions{hanging: sheet.Lists.Hanging})
	case blocks.KindParagraph:
		r.write(StyleNormal, sheet.Body, st.Text, paragraphOptions{bold: st.Bold})
	default:
		return fmt.Errorf("%w: unsupported block %s", ErrState, st.Kind)
	}
	return nil
}

// Finish appends the A4 section properties and serializes the package.
func (r *DocxRenderer) Finish() ([]byte, error) {
	if err := r.seq.finish(); err != nil {
		return nil, err
	}
	// w:sectPr must follow the last paragraph of the body.
	r.doc.WithA4Page()

	var buf bytes.Buffer
	if _, err := r.doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing docx: %w", err)
	}
	r.doc = nil
	return buf.Bytes(), nil
}

type paragraphOptions struct {
	bold          bool
	hanging       float64
	preserveSpace bool
}

func (r *DocxRenderer) listStyle() style.Paragraph {
	p := r.seq.sheet.Body
	p.Indent = r.seq.sheet.Lists.Indent
	return p
}

func (r *DocxRenderer) write(styleID string, ps style.Paragraph, text string, opts paragraphOptions) {
	ps = r.seq.sheet.Resolve(ps)

	p := r.doc.AddParagraph().Style(styleID)
	if jc := justification(ps.Align); jc != "" {
		p.Justification(jc)
	}
	if before := r.spaceAfter + ps.SpaceBefore; before > 0 {
		p.Properties.Spacing = &docx.Spacing{Before: style.PointTwips(before)}
	}
	if ps.Indent > 0 || opts.hanging > 0 {
		p.Properties.Ind = &docx.Ind{
			Left:    style.InchTwips(ps.Indent),
			Hanging: style.InchTwips(opts.hanging),
		}
	}

	run := p.AddText(text).
		Font(ps.Family, ps.Family, ps.Family, "").
		Size(strconv.Itoa(style.HalfPoints(ps.Size)))
	if ps.Bold || opts.bold {
		run.Bold()
	}
	if opts.preserveSpace {
		for _, child := range run.Children {
			if t, ok := child.(*docx.Text); ok {
				t.XMLSpace = "preserve"
			}
		}
	}

	r.spaceAfter = ps.SpaceAfter
}

func justification(align string) string {
	switch align {
	case style.AlignCenter:
		return "center"
	case style.AlignRight:
		return "right"
	case style.AlignJustify:
		return "both"
	default:
		return ""
	}
}

func clampLevel(level int) int {
	return min(max(level, 1), style.HeadingLevels)
}

// Compile-time interface check.
var _ Renderer = (*DocxRenderer)(nil)
