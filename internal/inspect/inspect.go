// Package inspect reads a .docx back into a flat list of paragraphs.
//
// It is used to verify rendered output: each body paragraph becomes one
// Entry carrying its style id, plain text and the formatting of its first
// text run. Tables, drawings and section properties are ignored.
package inspect

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"
)

// Entry is one body paragraph.
type Entry struct {
	Style string // w:pStyle value, empty if unset
	Text  string // text runs joined; tabs as \t, line breaks as \n
	Bold  bool   // every text run is bold

	PageBreak bool // paragraph holds a page break

	Font        string // w:rFonts ascii of the first text run
	HalfPoints  int    // w:sz of the first text run
	Align       string // w:jc value
	SpaceBefore int    // w:spacing before, in twips
	Indent      int    // w:ind left, in twips
	Hanging     int    // w:ind hanging, in twips
}

// Outline is the ordered list of paragraphs in a document body.
type Outline struct {
	Entries []Entry
}

// Read parses a .docx package.
func Read(r io.ReaderAt, size int64) (*Outline, error) {
	doc, err := docx.Parse(r, size)
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	outline := &Outline{}
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		outline.Entries = append(outline.Entries, readParagraph(para))
	}
	return outline, nil
}

// ReadBytes parses an in-memory .docx package.
func ReadBytes(data []byte) (*Outline, error) {
	return Read(bytes.NewReader(data), int64(len(data)))
}

func readParagraph(para *docx.Paragraph) Entry {
	var e Entry
	if props := para.Properties; props != nil {
		if props.Style != nil {
			e.Style = props.Style.Val
		}
		if props.Justification != nil {
			e.Align = props.Justification.Val
		}
		if props.Spacing != nil {
			e.SpaceBefore = props.Spacing.Before
		}
		if props.Ind != nil {
			e.Indent = props.Ind.Left
			e.Hanging = props.Ind.Hanging
		}
	}

	var sb strings.Builder
	textRuns, boldRuns := 0, 0
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		hasText := false
		for _, rc := range run.Children {
			switch v := rc.(type) {
			case *docx.Text:
				sb.WriteString(v.Text)
				hasText = true
			case *docx.Tab:
				sb.WriteByte('\t')
			case *docx.BarterRabbet:
				if v.Type == "page" {
					e.PageBreak = true
				} else {
					sb.WriteByte('\n')
				}
			}
		}
		if !hasText {
			continue
		}
		if textRuns == 0 {
			readRunFormat(run, &e)
		}
		textRuns++
		if run.RunProperties != nil && run.RunProperties.Bold != nil {
			boldRuns++
		}
	}
	e.Text = sb.String()
	e.Bold = textRuns > 0 && boldRuns == textRuns
	return e
}

func readRunFormat(run *docx.Run, e *Entry) {
	rp := run.RunProperties
	if rp == nil {
		return
	}
	if rp.Fonts != nil {
		e.Font = rp.Fonts.ASCII
	}
	if rp.Size != nil {
		e.HalfPoints, _ = strconv.Atoi(rp.Size.Val)
	}
}

// Texts returns the text of every paragraph that is not a bare page break.
func (o *Outline) Texts() []string {
	var texts []string
	for _, e := range o.Entries {
		if e.PageBreak && e.Text == "" {
			continue
		}
		texts = append(texts, e.Text)
	}
	return texts
}

// ByStyle returns the entries whose style id equals id.
func (o *Outline) ByStyle(id string) []Entry {
	var out []Entry
	for _, e := range o.Entries {
		if e.Style == id {
			out = append(out, e)
		}
	}
	return out
}

// Headings returns the text of every heading at level.
func (o *Outline) Headings(level int) []string {
	var out []string
	for _, e := range o.ByStyle("Heading" + strconv.Itoa(level)) {
		out = append(out, e.Text)
	}
	return out
}

// BreaksBefore returns the text of each paragraph that directly follows a
// page break.
func (o *Outline) BreaksBefore() []string {
	var out []string
	for i, e := range o.Entries {
		if e.PageBreak && e.Text == "" && i+1 < len(o.Entries) {
			out = append(out, o.Entries[i+1].Text)
		}
	}
	return out
}
