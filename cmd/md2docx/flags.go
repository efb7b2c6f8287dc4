package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds logging and config flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageBreakFlags holds page break flags.
type pageBreakFlags struct {
	before   []string // Heading 1 titles, comma separated or repeated
	disabled bool
}

// cliFlags holds every flag of the md2docx command.
type cliFlags struct {
	common     commonFlags
	input      string
	output     string
	style      string
	format     string
	assetPath  string
	pageBreaks pageBreakFlags
	verify     bool
	printStyle bool
	version    bool
	help       bool

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and block counts")
}

// addPageBreakFlags adds page break flags to a FlagSet.
func addPageBreakFlags(fs *flag.FlagSet, f *pageBreakFlags) {
	fs.StringSliceVar(&f.before, "break-before", nil, "Heading 1 titles that start a new page")
	fs.BoolVar(&f.disabled, "no-page-breaks", false, "disable page breaks")
}

// parseFlags parses command line flags and returns positional args.
// Usage output goes to stderr.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2docx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.input, "input", "i", "", "source document")
	fs.StringVarP(&f.output, "output", "o", "", "output file")
	fs.StringVarP(&f.style, "style", "s", "", "style preset name or YAML path")
	fs.StringVarP(&f.format, "format", "f", "", "output format: docx, html")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom style directory")

	addCommonFlags(fs, &f.common)
	addPageBreakFlags(fs, &f.pageBreaks)

	fs.BoolVar(&f.verify, "verify", false, "re-read the output and check its outline")
	fs.BoolVar(&f.printStyle, "print-style", false, "print the effective style sheet and exit")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.changed = fs.Changed
	return f, fs.Args(), nil
}
