package dom

import "strings"

// Inline style handling. Properties live in the style attribute so a
// rendered document reflects every override a transition applied.

// StyleValue returns the value of an inline style property, or "".
func (e *Element) StyleValue(prop string) string {
	for _, decl := range parseStyle(e.AttrOr("style", "")) {
		if decl.prop == prop {
			return decl.value
		}
	}
	return ""
}

// SetStyleValue sets an inline style property, preserving declaration
// order for existing properties.
func (e *Element) SetStyleValue(prop, value string) {
	decls := parseStyle(e.AttrOr("style", ""))
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			e.SetAttr("style", renderStyle(decls))
			return
		}
	}
	decls = append(decls, styleDecl{prop: prop, value: value})
	e.SetAttr("style", renderStyle(decls))
}

// RemoveStyleValue removes an inline style property. The style attribute
// is dropped entirely once no declarations remain.
func (e *Element) RemoveStyleValue(prop string) {
	decls := parseStyle(e.AttrOr("style", ""))
	kept := decls[:0]
	for _, d := range decls {
		if d.prop != prop {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", renderStyle(kept))
}

type styleDecl struct {
	prop  string
	value string
}

func parseStyle(s string) []styleDecl {
	var decls []styleDecl
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, styleDecl{
			prop:  strings.TrimSpace(prop),
			value: strings.TrimSpace(value),
		})
	}
	return decls
}

func renderStyle(decls []styleDecl) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(d.prop)
		b.WriteString(": ")
		b.WriteString(d.value)
	}
	return b.String()
}
