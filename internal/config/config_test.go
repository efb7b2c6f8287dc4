package config

// Notes:
// - Name resolution tests use t.Chdir and t.Setenv and therefore do not run
//   in parallel.
// - User config directory lookup is only tested on Linux, where
//   os.UserConfigDir honors XDG_CONFIG_HOME.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Fixed settings
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Input != "INVENTORY_PURCHASE_SYSTEM_DOCUMENTATION.md" {
		t.Errorf("Input = %q", cfg.Input)
	}
	if cfg.Output != "INVENTORY_PURCHASE_SYSTEM_DOCUMENTATION.docx" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Style != "styled" || cfg.Format != "docx" {
		t.Errorf("Style/Format = %q/%q", cfg.Style, cfg.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "team.yaml", `input: docs/manual.md
output: out/manual.docx
style: simple
format: docx
verify: true
assets:
  basePath: ./assets
pageBreaks:
  before:
    - API Reference
    - Troubleshooting Guide
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input != "docs/manual.md" || cfg.Output != "out/manual.docx" || cfg.Style != "simple" {
			t.Errorf("cfg = %+v", cfg)
		}
		if !cfg.Verify || cfg.Assets.BasePath != "./assets" {
			t.Errorf("verify/assets = %v/%q", cfg.Verify, cfg.Assets.BasePath)
		}
		got, ok := cfg.PageBreaks.Override()
		if !ok || !reflect.DeepEqual(got, []string{"API Reference", "Troubleshooting Guide"}) {
			t.Errorf("Override() = %v, %v", got, ok)
		}
	})

	t.Run("defaults fill unset fields", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "min.yaml", "input: notes.md\nformat: HTML\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output != "notes.html" {
			t.Errorf("Output = %q, want notes.html", cfg.Output)
		}
		if cfg.Style != DefaultStyle || cfg.Format != "html" {
			t.Errorf("Style/Format = %q/%q", cfg.Style, cfg.Format)
		}
		if _, ok := cfg.PageBreaks.Override(); ok {
			t.Error("expected no page break override")
		}
	})

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown key", "input: a.md\ncss: x\n", ErrConfigParse},
		{"syntax error", "input: [", ErrConfigParse},
		{"empty file", "", ErrConfigParse},
		{"bad format", "format: pdf\n", ErrInvalidFormat},
		{"blank title", "pageBreaks:\n  before: [\"  \"]\n", ErrEmptyTitle},
		{"long title", "pageBreaks:\n  before: [" + strings.Repeat("x", MaxTitleLength+1) + "]\n", ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, t.TempDir(), "c.yaml", tt.content)
			if _, err := LoadConfig(path); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfig_ByName - Search locations
// ---------------------------------------------------------------------------

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	writeConfig(t, dir, "local.yml", "style: simple\n")
	if cfg, err := LoadConfig("local"); err != nil || cfg.Style != "simple" {
		t.Errorf("LoadConfig(local) = %+v, %v", cfg, err)
	}

	if _, err := LoadConfig("nowhere"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig(nowhere) error = %v, want ErrConfigNotFound", err)
	}

	if runtime.GOOS != "linux" {
		return
	}
	writeConfig(t, dir, filepath.Join("xdg", "go-md2docx", "user.yaml"), "format: html\n")
	if cfg, err := LoadConfig("user"); err != nil || cfg.Format != "html" {
		t.Errorf("LoadConfig(user) = %+v, %v", cfg, err)
	}

	paths := SearchPaths("user")
	if len(paths) != 4 || paths[0] != "user.yaml" || paths[1] != "user.yml" {
		t.Errorf("SearchPaths() = %v", paths)
	}
	if !strings.HasSuffix(filepath.ToSlash(paths[2]), "xdg/go-md2docx/user.yaml") {
		t.Errorf("SearchPaths()[2] = %q", paths[2])
	}
}

// ---------------------------------------------------------------------------
// TestPageBreaksOverride - Replace or disable
// ---------------------------------------------------------------------------

func TestPageBreaksOverride(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		pb     PageBreaksConfig
		want   []string
		wantOK bool
	}{
		{"unset", PageBreaksConfig{}, nil, false},
		{"list", PageBreaksConfig{Before: []string{"A"}}, []string{"A"}, true},
		{"disabled wins", PageBreaksConfig{Before: []string{"A"}, Disabled: true}, []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.pb.Override()
			if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Override() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate - Length limits
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", MaxPathLength+1)
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"valid", func(c *Config) {}, nil},
		{"long input", func(c *Config) { c.Input = long }, ErrFieldTooLong},
		{"long output", func(c *Config) { c.Output = long }, ErrFieldTooLong},
		{"long style", func(c *Config) { c.Style = long }, ErrFieldTooLong},
		{"long base path", func(c *Config) { c.Assets.BasePath = long }, ErrFieldTooLong},
		{"uppercase format", func(c *Config) { c.Format = "HTML" }, nil},
		{"too many titles", func(c *Config) { c.PageBreaks.Before = make([]string, MaxTitles+1) }, ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
