package accordion

import (
	"strconv"

	"github.com/go-drift/accordion/pkg/dom"
	"github.com/go-drift/accordion/pkg/motion"
)

// Attribute names of the markup contract.
const (
	attrName           = "data-accordion-name"
	attrExpandedLabel  = "data-accordion-expanded-label"
	attrCollapsedLabel = "data-accordion-collapsed-label"
	attrInitialized    = "data-accordion-initialized"
)

// panelState tracks one panel through the toggle state machine.
//
//	          toggle(open)              finish
//	Closed ───────────────► Opening ───────────► Open
//	   ▲                                           │
//	   │        finish              toggle(close)  │
//	   └──────────────── Closing ◄─────────────────┘
//
// Opening and Closing are animation-in-flight states; a reverse toggle
// while in flight cancels the transition and crosses directly between
// them.
type panelState int

const (
	stateClosed panelState = iota
	stateOpening
	stateOpen
	stateClosing
)

func (s panelState) String() string {
	switch s {
	case stateClosed:
		return "closed"
	case stateOpening:
		return "opening"
	case stateOpen:
		return "open"
	case stateClosing:
		return "closing"
	default:
		return "panelState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Accordion is one accordion scope over a root container.
//
// The trigger and content lists are discovered once at construction and
// stay index-aligned for the instance's life: triggers[i] controls
// contents[i]. All methods must run on the host's event goroutine.
type Accordion struct {
	root     *dom.Element
	settings settings

	sections []*dom.Element
	headers  []*dom.Element
	triggers []*dom.Element
	contents []*dom.Element

	// transitions holds the in-flight transition per index; at most one
	// per index at any time.
	transitions []*motion.Transition
	states      []panelState

	// openGroups maps a group key to the index of its currently open
	// member, updated transactionally inside toggle.
	openGroups map[string]int

	inert bool
}

// New constructs an accordion over the given root container. A nil root,
// an already-initialized root, or a root with no matching elements
// produces an inert instance; every operation on it is a no-op.
func New(root *dom.Element, opts Options) *Accordion {
	a := &Accordion{
		root:       root,
		settings:   resolveOptions(opts),
		openGroups: make(map[string]int),
	}
	if root == nil || root.HasAttr(attrInitialized) {
		a.inert = true
		return a
	}
	a.discover()
	if a.inert {
		return a
	}
	a.transitions = make([]*motion.Transition, len(a.triggers))
	a.states = make([]panelState, len(a.triggers))
	a.wire()
	return a
}

// discover collects the structural element lists, excluding anything that
// belongs to a nested instance (a descendant of another matched content
// region). Empty required collections leave the instance inert.
func (a *Accordion) discover() {
	m := a.settings.matcher
	sel := a.settings.selector

	triggers := m.Match(a.root, sel.Trigger)
	contents := m.Match(a.root, sel.Content)

	a.triggers = excludeNested(triggers, contents)
	a.contents = excludeNested(contents, contents)

	if !a.settings.singleLevel {
		a.sections = excludeNested(m.Match(a.root, sel.Section), contents)
		a.headers = excludeNested(m.Match(a.root, sel.Header), contents)
		if len(a.sections) == 0 || len(a.headers) == 0 {
			a.inert = true
			return
		}
	}

	n := min(len(a.triggers), len(a.contents))
	a.triggers = a.triggers[:n]
	a.contents = a.contents[:n]
	if n == 0 {
		a.inert = true
	}
}

// excludeNested drops candidates that sit inside another matched content
// region, so an outer instance never captures a nested accordion's
// elements.
func excludeNested(candidates, contents []*dom.Element) []*dom.Element {
	kept := make([]*dom.Element, 0, len(candidates))
	for _, el := range candidates {
		nested := false
		for _, content := range contents {
			if content != el && content.Contains(el) {
				nested = true
				break
			}
		}
		if !nested {
			kept = append(kept, el)
		}
	}
	return kept
}

// Open expands the panel controlled by trigger. A trigger that is not a
// member of this instance is ignored.
func (a *Accordion) Open(trigger *dom.Element) {
	if i, ok := a.indexOf(trigger); ok {
		a.toggle(i, true, false)
	}
}

// Close collapses the panel controlled by trigger. A trigger that is not
// a member of this instance is ignored.
func (a *Accordion) Close(trigger *dom.Element) {
	if i, ok := a.indexOf(trigger); ok {
		a.toggle(i, false, false)
	}
}

// Inert reports whether construction found nothing to manage.
func (a *Accordion) Inert() bool {
	return a.inert
}

// Triggers returns the managed trigger elements in document order.
func (a *Accordion) Triggers() []*dom.Element {
	out := make([]*dom.Element, len(a.triggers))
	copy(out, a.triggers)
	return out
}

// Contents returns the managed content elements, index-aligned with
// Triggers.
func (a *Accordion) Contents() []*dom.Element {
	out := make([]*dom.Element, len(a.contents))
	copy(out, a.contents)
	return out
}

func (a *Accordion) indexOf(trigger *dom.Element) (int, bool) {
	if a.inert || trigger == nil {
		return 0, false
	}
	for i, t := range a.triggers {
		if t == trigger {
			return i, true
		}
	}
	return 0, false
}

// isOpen reports the requested-direction view of a panel: an Opening
// panel already counts as open so repeated toggles stay idempotent while
// the transition is in flight.
func (a *Accordion) isOpen(i int) bool {
	return a.states[i] == stateOpen || a.states[i] == stateOpening
}
