package inspect

// Notes:
// - Fixtures are built with go-docx directly so this package is tested
//   independently of the renderers.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/fumiama/go-docx"
)

func buildFixture(t *testing.T) []byte {
	t.Helper()

	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().Style("Title").Justification("center").
		AddText("Manual").Font("Arial", "Arial", "Arial", "").Size("36").Bold()
	doc.AddParagraph().AddPageBreaks()
	doc.AddParagraph().Style("Heading1").AddText("Overview").Bold()
	p := doc.AddParagraph().Style("ListBullet")
	p.Properties.Ind = &docx.Ind{Left: 720, Hanging: 360}
	p.Properties.Spacing = &docx.Spacing{Before: 120}
	p.AddText("•\tItem")
	doc.AddParagraph().Style("Code").AddText("a\nb")
	mixed := doc.AddParagraph().Style("Normal")
	mixed.AddText("plain ")
	mixed.AddText("bold").Bold()
	doc.AddParagraph().Style("Heading2").AddText("Details")
	doc.WithA4Page()

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	return buf.Bytes()
}

// ---------------------------------------------------------------------------
// TestRead - Paragraph extraction
// ---------------------------------------------------------------------------

func TestRead(t *testing.T) {
	t.Parallel()

	outline, err := ReadBytes(buildFixture(t))
	if err != nil {
		t.Fatalf("ReadBytes() error: %v", err)
	}
	if len(outline.Entries) != 7 {
		t.Fatalf("got %d entries, want 7: %+v", len(outline.Entries), outline.Entries)
	}

	title := outline.Entries[0]
	if title.Style != "Title" || title.Text != "Manual" || !title.Bold {
		t.Errorf("title = %+v", title)
	}
	if title.Font != "Arial" || title.HalfPoints != 36 || title.Align != "center" {
		t.Errorf("title format = %+v", title)
	}

	if !outline.Entries[1].PageBreak || outline.Entries[1].Text != "" {
		t.Errorf("entry 1 = %+v, want bare page break", outline.Entries[1])
	}

	bullet := outline.Entries[3]
	if bullet.Text != "•\tItem" || bullet.Indent != 720 || bullet.Hanging != 360 || bullet.SpaceBefore != 120 {
		t.Errorf("bullet = %+v", bullet)
	}
	if bullet.Bold {
		t.Error("bullet should not be bold")
	}

	if code := outline.Entries[4]; code.Text != "a\nb" {
		t.Errorf("code text = %q, want %q", code.Text, "a\nb")
	}

	if mixed := outline.Entries[5]; mixed.Text != "plain bold" || mixed.Bold {
		t.Errorf("mixed = %+v, want text 'plain bold' and not bold", mixed)
	}
}

func TestRead_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := ReadBytes([]byte("not a zip")); err == nil {
		t.Error("expected error for non-zip input")
	}
	if _, err := ReadBytes(nil); err == nil {
		t.Error("expected error for empty input")
	}
	var target interface{ Unwrap() error }
	if _, err := ReadBytes([]byte("x")); !errors.As(err, &target) {
		t.Errorf("error %v should wrap the parser error", err)
	}
}

// ---------------------------------------------------------------------------
// TestOutline - Queries
// ---------------------------------------------------------------------------

func TestOutline(t *testing.T) {
	t.Parallel()

	outline, err := ReadBytes(buildFixture(t))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"headings level 1", outline.Headings(1), []string{"Overview"}},
		{"headings level 2", outline.Headings(2), []string{"Details"}},
		{"headings level 3", outline.Headings(3), nil},
		{"breaks before", outline.BreaksBefore(), []string{"Overview"}},
		{"texts skip bare breaks", outline.Texts(), []string{"Manual", "Overview", "•\tItem", "a\nb", "plain bold", "Details"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if n := len(outline.ByStyle("Code")); n != 1 {
		t.Errorf("ByStyle(Code) = %d entries, want 1", n)
	}
}
