package dom

import (
	"github.com/andybalholm/cascadia"
)

// Matcher produces ordered element collections from a subtree. The
// matching mechanism is a pluggable capability; the accordion core only
// depends on this interface.
type Matcher interface {
	// Match returns the descendants of scope matching the selector,
	// in document order. An invalid selector yields no matches.
	Match(scope *Element, selector string) []*Element
}

// CSSMatcher matches elements with CSS selectors, including
// comma-separated selector groups.
type CSSMatcher struct {
	compiled map[string]cascadia.Selector
}

// NewCSSMatcher returns a Matcher backed by CSS selectors.
func NewCSSMatcher() *CSSMatcher {
	return &CSSMatcher{compiled: make(map[string]cascadia.Selector)}
}

// Match implements Matcher.
func (m *CSSMatcher) Match(scope *Element, selector string) []*Element {
	if scope == nil || selector == "" {
		return nil
	}
	sel, ok := m.compiled[selector]
	if !ok {
		parsed, err := cascadia.Compile(selector)
		if err != nil {
			// Invalid selectors degrade to an empty match set.
			m.compiled[selector] = nil
			return nil
		}
		sel = parsed
		m.compiled[selector] = sel
	}
	if sel == nil {
		return nil
	}
	nodes := sel.MatchAll(scope.node)
	elems := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if n == scope.node {
			continue
		}
		elems = append(elems, scope.doc.element(n))
	}
	return elems
}
