package dom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// HiddenState is the three-valued hidden attribute of an element.
type HiddenState int

const (
	// Visible means the element is rendered normally.
	Visible HiddenState = iota
	// HiddenUntilFound means the element is hidden but remains
	// discoverable by in-page search, which reveals it via a
	// beforematch event.
	HiddenUntilFound
	// Hidden means the element is fully hidden.
	Hidden
)

func (s HiddenState) String() string {
	switch s {
	case Visible:
		return "visible"
	case HiddenUntilFound:
		return "hidden-until-found"
	case Hidden:
		return "hidden"
	default:
		return "HiddenState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Element wraps one node of the document tree.
type Element struct {
	doc  *Document
	node *html.Node

	listeners map[string][]func(*Event)

	// naturalBlockSize is the element's laid-out content size as
	// reported by the host layout collaborator.
	naturalBlockSize float64
}

// Document returns the owning document.
func (e *Element) Document() *Document {
	return e.doc
}

// TagName returns the element's lowercase tag name.
func (e *Element) TagName() string {
	return e.node.Data
}

// Parent returns the parent element, or nil at the tree root.
func (e *Element) Parent() *Element {
	for n := e.node.Parent; n != nil; n = n.Parent {
		if n.Type == html.ElementNode {
			return e.doc.element(n)
		}
	}
	return nil
}

// Contains reports whether other is a descendant of e.
func (e *Element) Contains(other *Element) bool {
	if other == nil || other == e {
		return false
	}
	for n := other.node.Parent; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

// Attr returns an attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// AttrOr returns an attribute value, or fallback when absent.
func (e *Element) AttrOr(name, fallback string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return fallback
}

// HasAttr reports whether an attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets an attribute, replacing any existing value.
func (e *Element) SetAttr(name, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr removes an attribute if present.
func (e *Element) RemoveAttr(name string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == name {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return e.AttrOr("id", "")
}

// SetID sets the element's id attribute.
func (e *Element) SetID(id string) {
	e.SetAttr("id", id)
}

// Hidden returns the element's hidden state.
func (e *Element) Hidden() HiddenState {
	v, ok := e.Attr("hidden")
	if !ok {
		return Visible
	}
	if strings.EqualFold(v, "until-found") {
		return HiddenUntilFound
	}
	return Hidden
}

// SetHidden sets the element's hidden state.
func (e *Element) SetHidden(state HiddenState) {
	switch state {
	case Visible:
		e.RemoveAttr("hidden")
	case HiddenUntilFound:
		e.SetAttr("hidden", "until-found")
	case Hidden:
		e.SetAttr("hidden", "")
	}
}

// SetNaturalBlockSize records the element's natural content size in
// pixels. The host layout engine is the source of truth for this value.
func (e *Element) SetNaturalBlockSize(px float64) {
	e.naturalBlockSize = px
}

// NaturalBlockSize returns the size the element occupies when fully open.
func (e *Element) NaturalBlockSize() float64 {
	return e.naturalBlockSize
}

// BlockSize returns the element's current rendered block size. An inline
// block-size override (written by an in-flight transition) wins; a hidden
// element renders at zero.
func (e *Element) BlockSize() float64 {
	if v := e.StyleValue("block-size"); v != "" {
		if px, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64); err == nil {
			return px
		}
	}
	if e.Hidden() != Visible {
		return 0
	}
	return e.naturalBlockSize
}

// Focus gives the element document focus.
func (e *Element) Focus() {
	e.doc.active = e
}
