package assets

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/style"
)

// ---------------------------------------------------------------------------
// TestNewAssetResolver - Construction
// ---------------------------------------------------------------------------

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAssetResolver_LoadStyle - Custom first, embedded fallback
// ---------------------------------------------------------------------------

func TestAssetResolver_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "styled", "name: overridden\n")
	writeStyle(t, dir, "house", "name: house\n")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		style    string
		contains string
		wantErr  error
	}{
		{"custom overrides embedded", "styled", "name: overridden", nil},
		{"custom only", "house", "name: house", nil},
		{"falls back to embedded", "simple", "name: simple", nil},
		{"missing everywhere", "nowhere", "", ErrStyleNotFound},
		{"invalid name does not fall back", "a.b", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := resolver.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", tt.style, err)
			}
			if !strings.Contains(content, tt.contains) {
				t.Errorf("LoadStyle(%q) = %q, want it to contain %q", tt.style, content, tt.contains)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAssetResolver_LoadSheet - Parsing resolved sheets
// ---------------------------------------------------------------------------

func TestAssetResolver_LoadSheet(t *testing.T) {
	t.Parallel()

	t.Run("embedded preset", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatal(err)
		}
		s, err := resolver.LoadSheet(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadSheet() error = %v", err)
		}
		if s.Name != StyledStyleName {
			t.Errorf("Name = %q, want %q", s.Name, StyledStyleName)
		}
	})

	t.Run("invalid custom sheet", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeStyle(t, dir, "broken", "name: broken\nheadings: []\n")

		resolver, err := NewAssetResolver(dir)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := resolver.LoadSheet("broken"); !errors.Is(err, style.ErrInvalidSheet) {
			t.Errorf("LoadSheet() error = %v, want style.ErrInvalidSheet", err)
		}
	})

	t.Run("names lists presets", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatal(err)
		}
		if got := resolver.Names(); len(got) != 2 {
			t.Errorf("Names() = %v, want two presets", got)
		}
	})
}
