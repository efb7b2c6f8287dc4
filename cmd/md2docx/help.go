package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a structured text document to DOCX.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Source document (default: INVENTORY_PURCHASE_SYSTEM_DOCUMENTATION.md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Source document (same as the argument)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: input with the format's extension)")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: docx, html")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -s, --style <name|path>   Style preset (styled, simple) or YAML file")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory holding styles/{name}.yaml")
	fmt.Fprintln(w, "      --print-style         Print the effective style sheet and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page Breaks:")
	fmt.Fprintln(w, "      --break-before <s>    Heading 1 titles that start a new page (comma separated)")
	fmt.Fprintln(w, "      --no-page-breaks      Disable page breaks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --verify              Re-read the DOCX and check titles and headings")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and block counts")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > config file > defaults.")
}
