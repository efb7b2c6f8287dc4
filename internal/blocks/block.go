// Package blocks classifies the lines of a source document into typed blocks.
//
// The classifier is a single forward pass over an in-memory line slice. At
// each position the trimmed line is tested against a fixed list of rules in
// priority order; the first rule that matches decides the block kind and how
// many lines it consumes. Paragraphs greedily absorb following lines until a
// line that would start a different block.
//
// The classifier never fails: input that matches no rule is absorbed into a
// paragraph, and an unterminated code fence absorbs the rest of the input.
package blocks

import "fmt"

// Kind identifies the type of a Block.
type Kind int

// Block kinds, in no particular order.
const (
	KindTitle Kind = iota + 1
	KindHeading
	KindCode
	KindBullet
	KindNumbered
	KindTOC
	KindParagraph
)

var kindNames = map[Kind]string{
	KindTitle:     "title",
	KindHeading:   "heading",
	KindCode:      "code",
	KindBullet:    "bullet",
	KindNumbered:  "numbered",
	KindTOC:       "toc",
	KindParagraph: "paragraph",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns every block kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindTitle, KindHeading, KindCode, KindBullet, KindNumbered, KindTOC, KindParagraph}
}

// Block is one classified unit of content.
//
// Level is set only for headings (1-3). Bold is set only for paragraphs.
// Start and End delimit the source lines consumed by the block as the
// half-open range [Start, End).
type Block struct {
	Kind  Kind
	Level int
	Text  string
	Bold  bool
	Start int
	End   int
}

// Lines returns how many source lines the block consumed.
func (b Block) Lines() int {
	return b.End - b.Start
}

func (b Block) String() string {
	switch b.Kind {
	case KindHeading:
		return fmt.Sprintf("heading%d(%q)", b.Level, b.Text)
	case KindParagraph:
		if b.Bold {
			return fmt.Sprintf("paragraph(%q, bold)", b.Text)
		}
		return fmt.Sprintf("paragraph(%q)", b.Text)
	default:
		return fmt.Sprintf("%s(%q)", b.Kind, b.Text)
	}
}
