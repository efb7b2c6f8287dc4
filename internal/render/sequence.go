package render

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2docx/internal/blocks"
	"github.com/alnah/go-md2docx/internal/style"
)

type phase int

const (
	phaseNew phase = iota
	phaseOpen
	phaseDone
)

// step is a block prepared for output.
type step struct {
	blocks.Block
	Number    int  // ordinal of a numbered item, 0 otherwise
	PageBreak bool // a page break precedes this block
	Skip      bool // nothing is written for this block
}

// sequencer holds the state shared by all renderers: call order, list
// numbering and page break placement.
type sequencer struct {
	sheet   *style.Sheet
	phase   phase
	written int
	number  int
}

func (s *sequencer) begin(sheet *style.Sheet) error {
	if s.phase != phaseNew {
		return fmt.Errorf("%w: Begin called twice", ErrState)
	}
	if sheet == nil {
		return fmt.Errorf("%w: nil style sheet", ErrState)
	}
	s.sheet = sheet
	s.phase = phaseOpen
	return nil
}

func (s *sequencer) next(b blocks.Block) (step, error) {
	switch s.phase {
	case phaseNew:
		return step{}, fmt.Errorf("%w: Emit before Begin", ErrState)
	case phaseDone:
		return step{}, fmt.Errorf("%w: Emit after Finish", ErrState)
	}

	st := step{Block: b}

	if b.Kind == blocks.KindNumbered {
		s.number++
		st.Number = s.number
	} else {
		s.number = 0
	}

	if b.Kind == blocks.KindCode {
		if s.sheet.Code.Trim {
			st.Text = strings.TrimSpace(st.Text)
		}
		if st.Text == "" {
			st.Skip = true
			return st, nil
		}
	}

	st.PageBreak = b.Kind == blocks.KindHeading && b.Level == 1 &&
		s.written > 0 && s.sheet.BreaksBefore(b.Text)
	s.written++
	return st, nil
}

func (s *sequencer) finish() error {
	switch s.phase {
	case phaseNew:
		return fmt.Errorf("%w: Finish before Begin", ErrState)
	case phaseDone:
		return fmt.Errorf("%w: Finish called twice", ErrState)
	}
	s.phase = phaseDone
	return nil
}
