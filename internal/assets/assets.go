package assets

import "github.com/alnah/go-md2docx/internal/style"

// Built-in style names.
const (
	StyledStyleName  = "styled"
	SimpleStyleName  = "simple"
	DefaultStyleName = StyledStyleName
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a style sheet by name using the embedded loader.
// The name should not include the .yaml extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadSheet loads and parses an embedded style sheet.
func LoadSheet(name string) (*style.Sheet, error) {
	content, err := defaultLoader.LoadStyle(name)
	if err != nil {
		return nil, err
	}
	return style.Parse([]byte(content))
}

// Names lists the embedded style names.
func Names() []string {
	return defaultLoader.Names()
}
