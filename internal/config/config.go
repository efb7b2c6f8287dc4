// Package config loads the optional YAML configuration file of the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/render"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrEmptyTitle      = errors.New("page break title cannot be empty")
)

// Field length limits.
const (
	MaxPathLength  = 4096 // Input, output, style path, asset directory
	MaxTitleLength = 200  // Page break title
	MaxTitles      = 100  // Page break list
)

// Default conversion settings used when neither flags nor config set them.
const (
	DefaultInput  = "INVENTORY_PURCHASE_SYSTEM_DOCUMENTATION.md"
	DefaultOutput = "INVENTORY_PURCHASE_SYSTEM_DOCUMENTATION.docx"
	DefaultStyle  = "styled"
	DefaultFormat = render.FormatDOCX
)

// dirName is the directory searched under the user config directory.
const dirName = "go-md2docx"

// Config holds the settings of one conversion run.
type Config struct {
	Input      string           `yaml:"input"`
	Output     string           `yaml:"output"`
	Style      string           `yaml:"style"`  // preset name or YAML path
	Format     string           `yaml:"format"` // "docx" or "html"
	Verify     bool             `yaml:"verify"`
	Assets     AssetsConfig     `yaml:"assets"`
	PageBreaks PageBreaksConfig `yaml:"pageBreaks"`
}

// AssetsConfig defines where custom style sheets are looked up.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Directory holding styles/{name}.yaml (empty = embedded only)
}

// PageBreaksConfig overrides the page break titles of the style sheet.
type PageBreaksConfig struct {
	Before   []string `yaml:"before"`   // Replaces the sheet's list when non-empty
	Disabled bool     `yaml:"disabled"` // No page breaks at all
}

// Override returns the page break list to apply and whether the style
// sheet's own list should be replaced.
func (p PageBreaksConfig) Override() ([]string, bool) {
	if p.Disabled {
		return []string{}, true
	}
	if len(p.Before) > 0 {
		return p.Before, true
	}
	return nil, false
}

// Validate checks field lengths and the output format.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"input", c.Input},
		{"output", c.Output},
		{"style", c.Style},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Format != "" && !render.IsFormat(c.Format) {
		return fmt.Errorf("%w: %q (must be %s)", ErrInvalidFormat, c.Format, strings.Join(render.Formats(), " or "))
	}

	if len(c.PageBreaks.Before) > MaxTitles {
		return fmt.Errorf("%w: pageBreaks.before has %d titles (max %d)", ErrFieldTooLong, len(c.PageBreaks.Before), MaxTitles)
	}
	for i, title := range c.PageBreaks.Before {
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("%w: pageBreaks.before[%d]", ErrEmptyTitle, i)
		}
		if err := validateFieldLength(fmt.Sprintf("pageBreaks.before[%d]", i), title, MaxTitleLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s is %d bytes (max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Style:  DefaultStyle,
		Format: DefaultFormat,
	}
}

// ApplyDefaults fills unset fields. An unset output is derived from the
// input path and the output format.
func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	c.Format = strings.ToLower(c.Format)
	if c.Style == "" {
		c.Style = DefaultStyle
	}
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Output == "" {
		c.Output = fileutil.ReplaceExt(c.Input, render.Extension(c.Format))
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := yamlutil.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// the current directory, then the user config directory, each with .yaml
// and .yml extensions.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, dirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
