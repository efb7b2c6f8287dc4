package assets

// Notes:
// - Embedded presets are parsed through style.Parse so a broken preset
//   fails here rather than at conversion time.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestEmbeddedLoader_LoadStyle - Built-in presets
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name     string
		style    string
		wantErr  error
		contains string
	}{
		{"styled preset", "styled", nil, "name: styled"},
		{"simple preset", "simple", nil, "name: simple"},
		{"unknown style", "nonexistent", ErrStyleNotFound, ""},
		{"traversal rejected", "../styled", ErrInvalidAssetName, ""},
		{"extension rejected", "styled.yaml", ErrInvalidAssetName, ""},
		{"empty name", "", ErrInvalidAssetName, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := loader.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.style, err)
			}
			if !strings.Contains(content, tt.contains) {
				t.Errorf("LoadStyle(%q) missing %q", tt.style, tt.contains)
			}
		})
	}
}

func TestEmbeddedLoader_Names(t *testing.T) {
	t.Parallel()

	got := NewEmbeddedLoader().Names()
	want := []string{"simple", "styled"}
	if !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if !slices.Equal(Names(), want) {
		t.Errorf("package Names() = %v, want %v", Names(), want)
	}
}

// ---------------------------------------------------------------------------
// TestLoadSheet - Presets parse and validate
// ---------------------------------------------------------------------------

func TestLoadSheet(t *testing.T) {
	t.Parallel()

	t.Run("styled", func(t *testing.T) {
		t.Parallel()

		s, err := LoadSheet(StyledStyleName)
		if err != nil {
			t.Fatalf("LoadSheet(styled) error: %v", err)
		}
		if s.Body.Family != "Arial" || s.Body.Size != 11 {
			t.Errorf("body = %+v, want Arial 11", s.Body)
		}
		if s.Title.Size != 18 || !s.Title.Bold || s.Title.Align != "center" {
			t.Errorf("title = %+v, want 18pt bold centered", s.Title)
		}
		sizes := []float64{s.Headings[0].Size, s.Headings[1].Size, s.Headings[2].Size}
		if !slices.Equal(sizes, []float64{16, 14, 12}) {
			t.Errorf("heading sizes = %v, want [16 14 12]", sizes)
		}
		if s.Code.Style.Family != "Courier New" || s.Code.Style.Size != 10 || s.Code.Style.Indent != 0.5 {
			t.Errorf("code = %+v", s.Code.Style)
		}
		if len(s.PageBreaks.Before) != 10 {
			t.Errorf("page breaks = %d titles, want 10", len(s.PageBreaks.Before))
		}
		if !s.BreaksBefore("Voucher, Invoice, and Bill Linking") {
			t.Error("expected page break before 'Voucher, Invoice, and Bill Linking'")
		}
	})

	t.Run("simple", func(t *testing.T) {
		t.Parallel()

		s, err := LoadSheet(SimpleStyleName)
		if err != nil {
			t.Fatalf("LoadSheet(simple) error: %v", err)
		}
		if s.Code.Style.Size != 9 || s.Code.Style.Indent != 0 {
			t.Errorf("code = %+v, want 9pt without indent", s.Code.Style)
		}
		if len(s.PageBreaks.Before) != 0 {
			t.Errorf("page breaks = %v, want none", s.PageBreaks.Before)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadSheet("nonexistent"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadSheet(nonexistent) error = %v, want ErrStyleNotFound", err)
		}
	})
}
