package blocks

import (
	"iter"
	"regexp"
	"strings"
)

// Markers recognised by the classifier.
const (
	headingMarker = "#"
	fenceMarker   = "```"
	boldMarker    = "**"
	calloutMarker = "✅"
	versionLabel  = "**Document Version**"
)

// Precompiled patterns.
var (
	// Ordinal prefix of a numbered item ("12." or "3.").
	ordinalPrefix = regexp.MustCompile(`^\d+\.`)

	// Ordinal prefix plus the whitespace after it, stripped from item text.
	ordinalStrip = regexp.MustCompile(`^\d+\.\s*`)

	// Table-of-contents entry: "- [Label](#anchor)". Only the label is kept.
	tocEntry = regexp.MustCompile(`^- \[([^\]]+)\]\(#[^)]+\)`)
)

// Split breaks raw text into lines on "\n".
// Empty text yields no lines.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Scanner walks a line slice and produces one Block per call to Scan.
// A Scanner is single-use: once Scan returns false it stays exhausted.
type Scanner struct {
	lines  []string
	cursor int
	block  Block
}

// NewScanner returns a Scanner positioned at the first line.
func NewScanner(lines []string) *Scanner {
	return &Scanner{lines: lines}
}

// Scan advances to the next block. It returns false when the input is
// exhausted. Blank lines between blocks are skipped.
func (s *Scanner) Scan() bool {
	for s.cursor < len(s.lines) {
		line := strings.TrimSpace(s.lines[s.cursor])
		if line == "" {
			s.cursor++
			continue
		}
		s.block = s.classify(line)
		return true
	}
	s.block = Block{}
	return false
}

// Block returns the block produced by the most recent call to Scan.
func (s *Scanner) Block() Block {
	return s.block
}

// Classify returns a lazy sequence over the blocks of lines.
// The sequence shares one Scanner and can be ranged over only once.
func Classify(lines []string) iter.Seq[Block] {
	s := NewScanner(lines)
	return func(yield func(Block) bool) {
		for s.Scan() {
			if !yield(s.Block()) {
				return
			}
		}
	}
}

// classify decides the block starting at the cursor and advances past it.
// line is the trimmed, non-empty line at the cursor.
func (s *Scanner) classify(line string) Block {
	start := s.cursor

	if start == 0 && strings.HasPrefix(line, headingMarker) {
		return s.single(Block{Kind: KindTitle, Text: stripHeading(line)})
	}

	if level := headingLevel(line); level > 0 {
		return s.single(Block{Kind: KindHeading, Level: level, Text: stripHeading(line)})
	}

	if strings.HasPrefix(line, fenceMarker) {
		return s.fence()
	}

	if m := tocEntry.FindStringSubmatch(line); m != nil {
		return s.single(Block{Kind: KindTOC, Text: m[1]})
	}

	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return s.single(Block{Kind: KindBullet, Text: strings.TrimSpace(line[2:])})
	}

	if ordinalPrefix.MatchString(line) {
		return s.single(Block{Kind: KindNumbered, Text: ordinalStrip.ReplaceAllString(line, "")})
	}

	return s.paragraph(line)
}

// single emits b as consuming exactly the cursor line.
func (s *Scanner) single(b Block) Block {
	b.Start = s.cursor
	s.cursor++
	b.End = s.cursor
	return b
}

// fence collects raw lines up to the closing fence and consumes both fences.
// Without a closing fence the block runs to the end of input.
func (s *Scanner) fence() Block {
	start := s.cursor
	s.cursor++

	var body []string
	for s.cursor < len(s.lines) && !strings.HasPrefix(strings.TrimSpace(s.lines[s.cursor]), fenceMarker) {
		body = append(body, s.lines[s.cursor])
		s.cursor++
	}
	if s.cursor < len(s.lines) {
		s.cursor++ // closing fence
	}

	return Block{
		Kind:  KindCode,
		Text:  strings.Join(body, "\n"),
		Start: start,
		End:   s.cursor,
	}
}

// paragraph absorbs line and every following line that continues it.
func (s *Scanner) paragraph(line string) Block {
	start := s.cursor
	parts := []string{line}
	s.cursor++

	for s.cursor < len(s.lines) {
		next := strings.TrimSpace(s.lines[s.cursor])
		if !continuesParagraph(next) {
			break
		}
		parts = append(parts, next)
		s.cursor++
	}

	text := strings.Join(parts, " ")
	bold := false
	if len(text) >= 2*len(boldMarker) && strings.HasPrefix(text, boldMarker) && strings.HasSuffix(text, boldMarker) {
		text = text[len(boldMarker) : len(text)-len(boldMarker)]
		bold = true
	}

	return Block{
		Kind:  KindParagraph,
		Text:  text,
		Bold:  bold,
		Start: start,
		End:   s.cursor,
	}
}

// continuesParagraph reports whether a trimmed line may be absorbed into the
// paragraph above it.
func continuesParagraph(line string) bool {
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, headingMarker),
		strings.HasPrefix(line, "-"),
		strings.HasPrefix(line, "*"),
		strings.HasPrefix(line, fenceMarker),
		strings.HasPrefix(line, boldMarker),
		strings.HasPrefix(line, calloutMarker),
		strings.HasPrefix(line, versionLabel):
		return false
	case ordinalPrefix.MatchString(line):
		return false
	}
	return true
}

// headingLevel maps the leading marker run to a heading level.
// "##" is level 1, "###" level 2 and four or more markers level 3.
// A single marker is not a heading.
func headingLevel(line string) int {
	n := len(line) - len(strings.TrimLeft(line, headingMarker))
	switch {
	case n >= 4:
		return 3
	case n == 3:
		return 2
	case n == 2:
		return 1
	}
	return 0
}

func stripHeading(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, headingMarker))
}
