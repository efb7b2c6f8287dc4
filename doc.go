// Package md2docx converts structured plain-text documents to DOCX.
//
// # Quick Start
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Source: "# Manual\n\n## Overview\n\n- first item",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("manual.docx", result.Document, 0644)
//
// ConvertFile reads a source file and writes the output atomically.
//
// # Source Syntax
//
// The source is read line by line. Each line starts one of these blocks:
//
//	# Title           only on the first line
//	## / ### / ####   headings of level 1, 2 and 3
//	```               code fence, closed by the next ``` line
//	- [Label](#id)    table of contents entry
//	- item / * item   bullet item
//	1. item           numbered item
//	anything else     paragraph, continued by following plain lines
//
// A paragraph wrapped entirely in ** is rendered bold. Anything else is
// plain text; the classifier never rejects input.
//
// # Conversion Pipeline
//
//  1. Source preprocessing (BOM, line endings, Unicode NFC)
//  2. Block classification, a single forward pass over the lines
//  3. Rendering through a style sheet to docx (go-docx) or html
//
// # Configuration
//
//	conv, err := md2docx.NewConverter(
//	    md2docx.WithStyle("simple"),
//	    md2docx.WithAssetPath("/path/to/custom/assets"),
//	    md2docx.WithPageBreaks([]string{"API Reference"}),
//	    md2docx.WithFormat("html"),
//	)
//
// Style sheets are YAML. The built-in presets are "styled" (default) and
// "simple"; a custom sheet is loaded from {assetPath}/styles/{name}.yaml or
// from a file path given to WithStyle.
//
// # Error Handling
//
// Errors wrap sentinel values checked with errors.Is:
//
//	ErrReadSource, ErrRender, ErrWriteOutput, ErrStyleNotFound,
//	ErrInvalidStyle, ErrUnsupportedFormat, ErrInvalidAssetPath
package md2docx
