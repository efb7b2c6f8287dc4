package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docx/internal/style"
)

// pageBreakClass marks elements that start a new printed page.
const pageBreakClass = "page-break"

// buildStylesheet generates the CSS for an HTML preview of sheet.
func buildStylesheet(sheet *style.Sheet) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, `
body {
  font-family: "%s";
  font-size: %spt;
  margin: 2cm;
}
`, escapeCSSString(sheet.Body.Family), formatNumber(sheet.Body.Size))
	buf.WriteString(cssRule("p, li", sheet.Resolve(style.Paragraph{
		SpaceBefore: sheet.Body.SpaceBefore,
		SpaceAfter:  sheet.Body.SpaceAfter,
		Align:       sheet.Body.Align,
	}), ""))
	buf.WriteString(cssRule("h1.title", sheet.Resolve(sheet.Title), boldDecl(sheet.Title.Bold)))
	for level := 1; level <= style.HeadingLevels; level++ {
		h := sheet.Heading(level)
		buf.WriteString(cssRule(fmt.Sprintf("h%d", level+1), h, boldDecl(h.Bold)))
	}
	buf.WriteString(cssRule("pre", sheet.Resolve(sheet.Code.Style), "white-space: pre-wrap;"))

	fmt.Fprintf(&buf, `
ul, ol {
  margin: 0;
  padding-left: %sin;
}
ul {
  list-style-type: "%s ";
}
li {
  padding-left: %sin;
}
`, formatNumber(sheet.Lists.Indent), escapeCSSString(sheet.Lists.Bullet), formatNumber(sheet.Lists.Hanging))

	buf.WriteString(`
.` + pageBreakClass + ` {
  break-before: page;
  page-break-before: always;
}
`)
	return buf.String()
}

// cssRule renders the declarations of one paragraph style.
func cssRule(selector string, p style.Paragraph, extra string) string {
	var decls []string
	if p.Family != "" {
		decls = append(decls, fmt.Sprintf(`font-family: "%s"`, escapeCSSString(p.Family)))
	}
	if p.Size > 0 {
		decls = append(decls, "font-size: "+formatNumber(p.Size)+"pt")
	}
	if align := cssAlign(p.Align); align != "" {
		decls = append(decls, "text-align: "+align)
	}
	decls = append(decls,
		fmt.Sprintf("margin: %spt 0 %spt %sin", formatNumber(p.SpaceBefore), formatNumber(p.SpaceAfter), formatNumber(p.Indent)))
	if extra != "" {
		decls = append(decls, strings.TrimSuffix(extra, ";"))
	}

	var buf strings.Builder
	buf.WriteString("\n" + selector + " {\n")
	for _, d := range decls {
		buf.WriteString("  " + d + ";\n")
	}
	buf.WriteString("}\n")
	return buf.String()
}

func boldDecl(bold bool) string {
	if bold {
		return "font-weight: bold"
	}
	return "font-weight: normal"
}

func cssAlign(align string) string {
	switch align {
	case style.AlignCenter, style.AlignRight, style.AlignJustify:
		return align
	default:
		return ""
	}
}

// formatNumber prints a float without trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// escapeCSSString escapes a string for use inside a double-quoted CSS
// string, including the closing </style> sequence.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\A `)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "<", `\3C `)
	return s
}
