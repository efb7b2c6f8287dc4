package render

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2docx/internal/blocks"
	"github.com/alnah/go-md2docx/internal/style"
)

// HTMLRenderer writes a standalone HTML page for previewing a conversion
// in a browser. It follows the same rules as the docx renderer.
type HTMLRenderer struct {
	seq sequencer

	doc   *html.Node
	title *html.Node
	body  *html.Node

	// list is the open ul or ol that consecutive list items join.
	list *html.Node
}

// NewHTML returns an HTMLRenderer.
func NewHTML() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Begin builds the page skeleton and its stylesheet.
func (r *HTMLRenderer) Begin(sheet *style.Sheet) error {
	if err := r.seq.begin(sheet); err != nil {
		return err
	}

	r.doc = &html.Node{Type: html.DocumentNode}
	r.doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	r.doc.AppendChild(root)

	head := element(atom.Head)
	root.AppendChild(head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	r.title = element(atom.Title)
	head.AppendChild(r.title)
	css := element(atom.Style)
	css.AppendChild(text(buildStylesheet(sheet)))
	head.AppendChild(css)

	r.body = element(atom.Body)
	root.AppendChild(r.body)
	return nil
}

// Emit appends the elements for b.
func (r *HTMLRenderer) Emit(b blocks.Block) error {
	st, err := r.seq.next(b)
	if err != nil {
		return err
	}
	if st.Skip {
		r.list = nil
		return nil
	}

	var node *html.Node
	switch st.Kind {
	case blocks.KindTitle:
		node = element(atom.H1, html.Attribute{Key: "class", Val: "title"})
		node.AppendChild(text(st.Text))
		if r.title.FirstChild == nil {
			r.title.AppendChild(text(st.Text))
		}
	case blocks.KindHeading:
		node = element(headingAtom(clampLevel(st.Level)))
		node.AppendChild(text(st.Text))
	case blocks.KindCode:
		node = element(atom.Pre)
		code := element(atom.Code)
		code.AppendChild(text(st.Text))
		node.AppendChild(code)
	case blocks.KindBullet, blocks.KindTOC:
		r.appendItem(atom.Ul, st.Text)
		return nil
	case blocks.KindNumbered:
		r.appendItem(atom.Ol, st.Text)
		return nil
	case blocks.KindParagraph:
		node = element(atom.P)
		if st.Bold {
			strong := element(atom.Strong)
			strong.AppendChild(text(st.Text))
			node.AppendChild(strong)
		} else {
			node.AppendChild(text(st.Text))
		}
	default:
		return fmt.Errorf("%w: unsupported block %s", ErrState, st.Kind)
	}

	if st.PageBreak {
		addClass(node, pageBreakClass)
	}
	r.list = nil
	r.body.AppendChild(node)
	return nil
}

// Finish renders the page.
func (r *HTMLRenderer) Finish() ([]byte, error) {
	if err := r.seq.finish(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, r.doc); err != nil {
		return nil, fmt.Errorf("writing html: %w", err)
	}
	r.doc, r.title, r.body, r.list = nil, nil, nil, nil
	return buf.Bytes(), nil
}

// appendItem adds a list item, opening a new list when the previous block
// was not an item of the same list type.
func (r *HTMLRenderer) appendItem(list atom.Atom, content string) {
	if r.list == nil || r.list.DataAtom != list {
		r.list = element(list)
		r.body.AppendChild(r.list)
	}
	li := element(atom.Li)
	li.AppendChild(text(content))
	r.list.AppendChild(li)
}

func headingAtom(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H2
	case 2:
		return atom.H3
	default:
		return atom.H4
	}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func addClass(n *html.Node, class string) {
	for i, a := range n.Attr {
		if a.Key == "class" {
			n.Attr[i].Val = a.Val + " " + class
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}

// Compile-time interface check.
var _ Renderer = (*HTMLRenderer)(nil)
