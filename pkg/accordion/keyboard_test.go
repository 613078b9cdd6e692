package accordion

import (
	"strings"
	"testing"

	"github.com/go-drift/accordion/pkg/dom"
)

func keydown(el *dom.Element, key string) *dom.Event {
	ev := &dom.Event{Type: "keydown", Key: key}
	el.DispatchEvent(ev)
	return ev
}

func TestArrowWraparound(t *testing.T) {
	f := newFixture(t, defaultMarkup, Options{})

	// ArrowDown from the last trigger wraps to the first.
	f.el("t3").Focus()
	keydown(f.el("t3"), "ArrowDown")
	if got := f.doc.ActiveElement(); got != f.el("t1") {
		t.Errorf("ArrowDown from last landed on %q, want t1", got.ID())
	}

	// ArrowUp from the first trigger wraps to the last.
	keydown(f.el("t1"), "ArrowUp")
	if got := f.doc.ActiveElement(); got != f.el("t3") {
		t.Errorf("ArrowUp from first landed on %q, want t3", got.ID())
	}
}

func TestHomeEnd(t *testing.T) {
	f := newFixture(t, defaultMarkup, Options{})

	f.el("t2").Focus()
	keydown(f.el("t2"), "Home")
	if got := f.doc.ActiveElement(); got != f.el("t1") {
		t.Errorf("Home landed on %q, want t1", got.ID())
	}

	keydown(f.el("t1"), "End")
	if got := f.doc.ActiveElement(); got != f.el("t3") {
		t.Errorf("End landed on %q, want t3", got.ID())
	}
}

func TestEnterAndSpaceActivate(t *testing.T) {
	f := newFixture(t, defaultMarkup, Options{})

	f.el("t3").Focus()
	keydown(f.el("t3"), "Enter")
	if f.acc.states[2] != stateOpening {
		t.Errorf("Enter should activate the focused trigger, state = %v", f.acc.states[2])
	}
	f.settle()

	keydown(f.el("t3"), " ")
	if f.acc.states[2] != stateClosing {
		t.Errorf("Space should toggle the focused trigger, state = %v", f.acc.states[2])
	}
}

func TestInterceptedKeysAreConsumed(t *testing.T) {
	f := newFixture(t, defaultMarkup, Options{})
	f.el("t1").Focus()

	ev := keydown(f.el("t1"), "ArrowDown")
	if !ev.DefaultPrevented() {
		t.Error("intercepted key should prevent default")
	}
	if !ev.PropagationStopped() {
		t.Error("intercepted key should stop propagation")
	}
}

func TestOtherKeysPassThrough(t *testing.T) {
	f := newFixture(t, defaultMarkup, Options{})
	f.el("t1").Focus()

	ev := keydown(f.el("t1"), "a")
	if ev.DefaultPrevented() || ev.PropagationStopped() {
		t.Error("unhandled keys must pass through untouched")
	}
	if got := f.doc.ActiveElement(); got != f.el("t1") {
		t.Error("unhandled keys must not move focus")
	}

	ev = keydown(f.el("t1"), "Tab")
	if ev.DefaultPrevented() {
		t.Error("Tab is not intercepted")
	}
}

func TestNoFocusIsNoOp(t *testing.T) {
	f := newFixture(t, defaultMarkup, Options{})

	// Nothing focused: the key passes through unconsumed and nothing
	// gains focus.
	ev := keydown(f.el("t1"), "ArrowDown")
	if ev.DefaultPrevented() || ev.PropagationStopped() {
		t.Error("keys must pass through when nothing is focused")
	}
	if f.doc.ActiveElement() != nil {
		t.Error("no element should gain focus without a prior focus")
	}

	ev = keydown(f.el("t1"), "Enter")
	if ev.DefaultPrevented() {
		t.Error("Enter must pass through when nothing is focused")
	}
	if f.acc.states[0] != stateClosed {
		t.Error("no panel should toggle without a focused trigger")
	}
}

func TestDisabledTriggerScenario(t *testing.T) {
	markup := strings.Replace(defaultMarkup,
		`<button id="t2" data-accordion-trigger data-accordion-name="g1">`,
		`<button id="t2" aria-disabled="true" data-accordion-trigger data-accordion-name="g1">`, 1)
	f := newFixture(t, markup, Options{})
	disabled := f.el("t2")

	if got := disabled.AttrOr("tabindex", ""); got != "-1" {
		t.Errorf("disabled trigger tabindex = %q, want -1", got)
	}
	if got := disabled.StyleValue("pointer-events"); got != "none" {
		t.Errorf("disabled trigger pointer-events = %q, want none", got)
	}

	// Roving focus skips it entirely.
	f.el("t1").Focus()
	keydown(f.el("t1"), "ArrowDown")
	if got := f.doc.ActiveElement(); got != f.el("t3") {
		t.Errorf("ArrowDown skipped to %q, want t3", got.ID())
	}
	keydown(f.el("t3"), "ArrowUp")
	if got := f.doc.ActiveElement(); got != f.el("t1") {
		t.Errorf("ArrowUp skipped to %q, want t1", got.ID())
	}

	// Still programmatically toggleable.
	f.acc.Open(disabled)
	f.settle()
	if !expandedAttr(disabled) {
		t.Error("disabled trigger should still toggle via Open")
	}
}

func TestNativeDisabledAttributeExcluded(t *testing.T) {
	markup := strings.Replace(defaultMarkup,
		`<button id="t2" data-accordion-trigger data-accordion-name="g1">`,
		`<button id="t2" disabled data-accordion-trigger data-accordion-name="g1">`, 1)
	f := newFixture(t, markup, Options{})

	f.el("t1").Focus()
	keydown(f.el("t1"), "ArrowDown")
	if got := f.doc.ActiveElement(); got != f.el("t3") {
		t.Errorf("natively disabled trigger not skipped, focus on %q", got.ID())
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		index, count, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{7, 3, 1},
	}
	for _, tt := range tests {
		if got := wrapIndex(tt.index, tt.count); got != tt.want {
			t.Errorf("wrapIndex(%d, %d) = %d, want %d", tt.index, tt.count, got, tt.want)
		}
	}
}
