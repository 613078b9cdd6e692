// Package accordion implements an accessible, animated collapsible-panel
// widget over a document tree.
//
// An [Accordion] manages a set of trigger/panel pairs inside a root
// container: it wires the ARIA relationships between each trigger and the
// content it controls, toggles panels with a block-size transition, keeps
// at most one panel open per named group, and roves keyboard focus among
// the focusable triggers.
//
// # Construction
//
//	doc, err := dom.Parse(strings.NewReader(markup))
//	if err != nil {
//	    return err
//	}
//	acc := accordion.New(doc.Body(), accordion.Options{})
//
// Construction discovers the trigger and content elements matching the
// configured selectors, assigns missing ids, links triggers to panels via
// aria-controls/aria-labelledby, and attaches click, keydown, and
// beforematch listeners. A root with no matching elements produces an
// inert instance whose operations are all no-ops.
//
// # Toggling
//
// [Accordion.Open] and [Accordion.Close] drive a per-panel state machine
// with four states: Closed, Opening, Open, Closing. Toggles are
// idempotent, a panel animates at most one transition at a time, and
// opening a trigger that carries data-accordion-name closes the group's
// previously open member first. Transitions advance when the host pumps
// [motion.Step]; hosts without a frame loop can settle everything with
// [motion.Flush].
//
// # Markup contract
//
// Consumed and produced attributes: data-accordion-section, -header,
// -trigger (alias -button), -content (structure, overridable via
// [Options.Selector]),
// data-accordion-name (group key), data-accordion-expanded-label and
// -collapsed-label (accessible label overrides), aria-expanded,
// aria-controls, aria-labelledby, aria-disabled, role=region, tabindex,
// hidden (including the until-found variant), and
// data-accordion-initialized on the root.
package accordion
