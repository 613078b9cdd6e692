package dom

// Event is a typed input message dispatched to element listeners.
// Dispatch is synchronous and runs on the caller's goroutine.
type Event struct {
	// Type is the event name, e.g. "click", "keydown", "beforematch".
	Type string

	// Key is the key value for keydown events, e.g. "Enter", "ArrowDown".
	Key string

	target *Element

	defaultPrevented   bool
	propagationStopped bool
}

// Target returns the element the event was dispatched to.
func (ev *Event) Target() *Element {
	return ev.target
}

// PreventDefault suppresses the host's default action for the event.
func (ev *Event) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// StopPropagation stops the event from bubbling to ancestors.
func (ev *Event) StopPropagation() {
	ev.propagationStopped = true
}

// PropagationStopped reports whether StopPropagation was called.
func (ev *Event) PropagationStopped() bool {
	return ev.propagationStopped
}

// AddEventListener registers a listener for the given event type.
func (e *Element) AddEventListener(typ string, fn func(*Event)) {
	if e.listeners == nil {
		e.listeners = make(map[string][]func(*Event))
	}
	e.listeners[typ] = append(e.listeners[typ], fn)
}

// DispatchEvent delivers the event to the element's listeners, then
// bubbles it through ancestors until stopped.
func (e *Element) DispatchEvent(ev *Event) {
	ev.target = e
	for el := e; el != nil; el = el.Parent() {
		for _, fn := range el.listeners[ev.Type] {
			fn(ev)
		}
		if ev.propagationStopped {
			return
		}
	}
}

// Click dispatches a click event on the element.
func (e *Element) Click() {
	e.DispatchEvent(&Event{Type: "click"})
}
