package dom

import (
	"io"

	"golang.org/x/net/html"
)

// Document owns a parsed HTML tree and the elements interned from it.
type Document struct {
	root  *html.Node
	elems map[*html.Node]*Element

	// active is the element holding document focus, if any.
	active *Element
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{
		root:  root,
		elems: make(map[*html.Node]*Element),
	}, nil
}

// Render writes the document back out as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Root returns the document element (<html>), or nil for an empty tree.
func (d *Document) Root() *Element {
	for n := d.root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return d.element(n)
		}
	}
	return nil
}

// Body returns the document body, or nil if the tree has none.
func (d *Document) Body() *Element {
	return d.find(d.root, "body")
}

func (d *Document) find(n *html.Node, tag string) *Element {
	if n.Type == html.ElementNode && n.Data == tag {
		return d.element(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if el := d.find(c, tag); el != nil {
			return el
		}
	}
	return nil
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.walk(d.root, func(el *Element) bool {
		if el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// ActiveElement returns the element holding focus, or nil.
func (d *Document) ActiveElement() *Element {
	return d.active
}

// walk visits elements in document order until visit returns false.
func (d *Document) walk(n *html.Node, visit func(*Element) bool) bool {
	if n.Type == html.ElementNode {
		if !visit(d.element(n)) {
			return false
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !d.walk(c, visit) {
			return false
		}
	}
	return true
}

// element interns the wrapper for a node, so identity comparisons work.
func (d *Document) element(n *html.Node) *Element {
	if el, ok := d.elems[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elems[n] = el
	return el
}
