package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/blocks"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
	"github.com/alnah/go-md2docx/internal/render"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// ErrUsage indicates invalid command line arguments.
var ErrUsage = errors.New("invalid usage")

// runMain runs the command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error during conversion: %v\n", err)
	}
	return exitCodeFor(err)
}

// run parses flags, resolves settings and converts one document.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
		return nil
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return withHint(err, hintFor(err, flags.common.config, ""))
	}
	if err := mergeFlags(flags, positional, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return withHint(err, hintFor(err, "", cfg.Input))
	}

	logger := newLogger(env.Stderr, flags.common)
	conv, err := md2docx.NewConverter(converterOptions(cfg, logger)...)
	if err != nil {
		return withHint(err, hintFor(err, "", cfg.Input))
	}

	if flags.printStyle {
		data, err := yamlutil.Marshal(conv.Sheet())
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	logger.Debug("converting",
		slog.String("input", cfg.Input),
		slog.String("output", cfg.Output),
		slog.String("style", cfg.Style),
		slog.String("format", cfg.Format))

	result, err := conv.ConvertFile(ctx, cfg.Input, cfg.Output)
	if err != nil {
		return withHint(err, hintFor(err, "", cfg.Input))
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Document converted successfully: %s\n", cfg.Output)
		if flags.common.verbose {
			printSummary(env.Stdout, result)
		}
		fmt.Fprintln(env.Stdout, "Conversion completed successfully!")
	}
	return nil
}

// loadConfig returns the named config, or an empty one when name is empty.
// Defaults are applied after flags are merged.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return &config.Config{}, nil
	}
	return config.LoadConfig(name)
}

// mergeFlags applies command line flags over cfg, then fills defaults.
// A new input or format without an explicit output re-derives the output
// path from them.
func mergeFlags(flags *cliFlags, positional []string, cfg *config.Config) error {
	switch {
	case len(positional) > 1:
		return fmt.Errorf("%w: expected at most one input, got %d", ErrUsage, len(positional))
	case len(positional) == 1 && flags.input != "" && positional[0] != flags.input:
		return fmt.Errorf("%w: input given both as argument and --input", ErrUsage)
	case len(positional) == 1:
		flags.input = positional[0]
	}

	rederive := false
	if flags.input != "" {
		cfg.Input = flags.input
		rederive = true
	}
	if flags.format != "" {
		cfg.Format = flags.format
		rederive = true
	}
	if flags.output != "" {
		cfg.Output = flags.output
	} else if rederive {
		cfg.Output = ""
	}
	if flags.style != "" {
		cfg.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.changed("verify") {
		cfg.Verify = flags.verify
	}
	if flags.pageBreaks.disabled {
		cfg.PageBreaks.Disabled = true
	} else if len(flags.pageBreaks.before) > 0 {
		cfg.PageBreaks.Before = trimTitles(flags.pageBreaks.before)
		cfg.PageBreaks.Disabled = false
	}

	cfg.ApplyDefaults()
	return nil
}

// trimTitles strips blank space around comma separated titles.
func trimTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		out = append(out, strings.TrimSpace(t))
	}
	return out
}

// converterOptions maps effective settings to converter options.
func converterOptions(cfg *config.Config, logger *slog.Logger) []md2docx.Option {
	opts := []md2docx.Option{
		md2docx.WithStyle(cfg.Style),
		md2docx.WithFormat(cfg.Format),
		md2docx.WithAssetPath(cfg.Assets.BasePath),
		md2docx.WithVerify(cfg.Verify),
		md2docx.WithLogger(logger),
	}
	if titles, ok := cfg.PageBreaks.Override(); ok {
		opts = append(opts, md2docx.WithPageBreaks(titles))
	}
	return opts
}

// newLogger returns a text logger on w at the level chosen by flags.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printSummary prints block counts per kind.
func printSummary(w io.Writer, result *md2docx.ConvertResult) {
	fmt.Fprintf(w, "Blocks: %d\n", result.Blocks)
	for _, kind := range blocks.Kinds() {
		if n := result.Counts[kind]; n > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", kind, n)
		}
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, configName, input string) string {
	switch {
	case errors.Is(err, md2docx.ErrReadSource):
		switch {
		case errors.Is(err, os.ErrNotExist):
			return hints.ForSourceNotFound(input)
		case errors.Is(err, os.ErrPermission):
			return ""
		}
		return hints.ForInvalidEncoding()
	case errors.Is(err, md2docx.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, config.ErrConfigNotFound):
		if fileutil.IsFilePath(configName) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, md2docx.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.Names())
	case errors.Is(err, md2docx.ErrInvalidStyle):
		return hints.ForInvalidStyle()
	case errors.Is(err, md2docx.ErrUnsupportedFormat), errors.Is(err, config.ErrInvalidFormat):
		return hints.ForUnsupportedFormat(render.Formats())
	}
	return ""
}

// hintError appends a hint to an error message.
type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() + e.hint }
func (e *hintError) Unwrap() error { return e.err }

// withHint attaches hint to err. An empty hint returns err unchanged.
func withHint(err error, hint string) error {
	if hint == "" {
		return err
	}
	return &hintError{err: err, hint: hint}
}
