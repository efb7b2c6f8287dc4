package md2docx

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alnah/go-md2docx/internal/blocks"
	"github.com/alnah/go-md2docx/internal/inspect"
	"github.com/alnah/go-md2docx/internal/render"
	"github.com/alnah/go-md2docx/internal/style"
)

// errOutlineMismatch reports rendered output that lost structure.
var errOutlineMismatch = errors.New("rendered outline does not match source")

// outline records the title and heading texts emitted during a conversion.
type outline struct {
	titles   []string
	headings [style.HeadingLevels][]string
}

func (o *outline) add(b blocks.Block) {
	switch b.Kind {
	case blocks.KindTitle:
		o.titles = append(o.titles, b.Text)
	case blocks.KindHeading:
		level := clampLevel(b.Level)
		o.headings[level-1] = append(o.headings[level-1], b.Text)
	}
}

// verify reads doc back and compares its outline with the recorded one.
func (o *outline) verify(doc []byte) error {
	got, err := inspect.ReadBytes(doc)
	if err != nil {
		return err
	}

	var titles []string
	for _, e := range got.ByStyle(render.StyleTitle) {
		titles = append(titles, e.Text)
	}
	if !slices.Equal(titles, o.titles) {
		return fmt.Errorf("%w: titles %q, want %q", errOutlineMismatch, titles, o.titles)
	}

	for i, want := range o.headings {
		level := i + 1
		if have := got.Headings(level); !slices.Equal(have, want) {
			return fmt.Errorf("%w: level %d headings %q, want %q", errOutlineMismatch, level, have, want)
		}
	}
	return nil
}
