// Package dom provides a lightweight document model for accordion widgets.
//
// The package wraps golang.org/x/net/html parse trees with the small slice
// of DOM behavior the accordion core needs: attribute access, inline style
// properties, the three-valued hidden state, synchronous event dispatch,
// and document focus tracking.
//
// # Elements
//
// [Document] owns a parsed tree and interns one [Element] per underlying
// node, so pointer identity can be used to compare elements:
//
//	doc, err := dom.Parse(strings.NewReader(markup))
//	if err != nil {
//	    return err
//	}
//	root := doc.Root()
//
// # Structural matching
//
// Element discovery goes through the [Matcher] capability rather than a
// hard-coded query mechanism. [CSSMatcher] is the default implementation,
// backed by CSS selectors. Any matcher producing ordered element
// collections from a subtree is substitutable.
//
// # Layout collaboration
//
// The package performs no layout. The host reports each element's natural
// block size via [Element.SetNaturalBlockSize]; [Element.BlockSize] derives
// the rendered size from the hidden state and any inline block-size
// override, which is what animated transitions read and write.
package dom
