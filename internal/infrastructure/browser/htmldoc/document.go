// Package htmldoc is a port.Document over a parsed HTML tree.
package htmldoc

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/shades/internal/application/port"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document holds a parsed page. It is safe for concurrent use.
type Document struct {
	mu   sync.Mutex
	root *html.Node
}

var _ port.Document = (*Document)(nil)

// Parse reads an HTML document. html.Parse always yields <html>, <head> and <body>.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// New returns an empty document.
func New() *Document {
	doc, _ := Parse(strings.NewReader("<!DOCTYPE html><html><head></head><body></body></html>"))
	return doc
}

// RemoveElement detaches every element carrying id.
func (d *Document) RemoveElement(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, n := range findAll(d.root, id) {
		n.Parent.RemoveChild(n)
	}
	return nil
}

// AppendStyle appends <style id=id>css</style> to <head>.
func (d *Document) AppendStyle(_ context.Context, id, css string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	style := &html.Node{
		Type:     html.ElementNode,
		Data:     "style",
		DataAtom: atom.Style,
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	d.container(atom.Head).AppendChild(style)
	return nil
}

// AppendOverlay appends an empty <div id=id> to <body>.
func (d *Document) AppendOverlay(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.container(atom.Body).AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	})
	return nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// Count returns how many elements carry id.
func (d *Document) Count(id string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(findAll(d.root, id))
}

// Text returns the text content of the first element carrying id.
func (d *Document) Text(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	nodes := findAll(d.root, id)
	if len(nodes) == 0 {
		return "", false
	}
	var b strings.Builder
	for c := nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String(), true
}

// container finds <head> or <body>, falling back to the root element.
func (d *Document) container(a atom.Atom) *html.Node {
	if n := findAtom(d.root, a); n != nil {
		return n
	}
	if n := findAtom(d.root, atom.Html); n != nil {
		return n
	}
	return d.root
}

func findAtom(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findAtom(c, a); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, id string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
