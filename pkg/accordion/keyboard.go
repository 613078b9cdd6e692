package accordion

import "github.com/go-drift/accordion/pkg/dom"

// handleKeydown implements roving focus among the focusable triggers.
// Only Enter, Space, Home, End, ArrowUp, and ArrowDown are intercepted;
// every other key passes through untouched.
func (a *Accordion) handleKeydown(ev *dom.Event) {
	switch ev.Key {
	case "Enter", " ", "Home", "End", "ArrowUp", "ArrowDown":
	default:
		return
	}
	// Without a focused element there is nothing to activate or rove
	// from; the key passes through unconsumed.
	active := a.root.Document().ActiveElement()
	if active == nil {
		return
	}
	ev.PreventDefault()
	ev.StopPropagation()

	if ev.Key == "Enter" || ev.Key == " " {
		active.Click()
		return
	}

	focusable := a.focusableTriggers()
	if len(focusable) == 0 {
		return
	}

	current := -1
	for i, t := range focusable {
		if t == active {
			current = i
			break
		}
	}

	var next int
	switch ev.Key {
	case "Home":
		next = 0
	case "End":
		next = len(focusable) - 1
	case "ArrowUp":
		if current < 0 {
			next = len(focusable) - 1
		} else {
			next = wrapIndex(current-1, len(focusable))
		}
	case "ArrowDown":
		if current < 0 {
			next = 0
		} else {
			next = wrapIndex(current+1, len(focusable))
		}
	}
	focusable[next].Focus()
}

// focusableTriggers filters out disabled triggers; they never receive
// roving focus.
func (a *Accordion) focusableTriggers() []*dom.Element {
	out := make([]*dom.Element, 0, len(a.triggers))
	for _, t := range a.triggers {
		if t.AttrOr("aria-disabled", "") == "true" || t.HasAttr("disabled") {
			continue
		}
		out = append(out, t)
	}
	return out
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
