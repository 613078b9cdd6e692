// Package motion drives size transitions for accordion panels.
//
// # Contract
//
// A [Transition] animates a scalar value from a start size to a target
// size over a duration, reporting progress through an OnTick callback and
// completion through exactly one OnFinish notification — unless the
// transition is canceled first, in which case the notification is
// suppressed and the superseded transition leaves no further side effects.
//
//	t := motion.Start(motion.Spec{
//	    From:     0,
//	    To:       240,
//	    Duration: 300 * time.Millisecond,
//	    Easing:   motion.EaseInOut,
//	    OnTick:   func(px float64) { box.SetStyleValue("block-size", fmt.Sprintf("%gpx", px)) },
//	    OnFinish: func() { box.RemoveStyleValue("block-size") },
//	})
//
// # Frame pump
//
// Transitions advance when the host calls [Step], once per frame.
// Callbacks queued with [OnNextFrame] run at the start of the following
// Step, before any transition advances; this is the "next paint
// opportunity" used to flip accessibility state in lockstep with the
// perceived animation start. All of this runs on the caller's goroutine.
//
// Time comes from the package [Clock], replaceable for deterministic
// tests via [SetClock].
package motion

import (
	"sync"
	"time"
)

var (
	mu sync.Mutex
	// active keeps transitions in start order, so ticks within a frame
	// are deterministic.
	active []*Transition
	frame  []func()
)

// Spec describes one size transition.
type Spec struct {
	// From is the starting size in pixels.
	From float64
	// To is the target size in pixels.
	To float64
	// Duration is the transition length. A non-positive duration jumps
	// to the target on the next Step.
	Duration time.Duration
	// Easing transforms linear progress. Nil means Linear.
	Easing Easing
	// OnTick receives the current size each time the transition advances.
	OnTick func(value float64)
	// OnFinish fires exactly once when the transition reaches its target.
	// It never fires after Cancel.
	OnFinish func()
}

// Transition is one in-flight size transition.
type Transition struct {
	spec     Spec
	begin    time.Time
	value    float64
	canceled bool
	done     bool
}

// Start begins a transition and registers it with the frame pump.
func Start(spec Spec) *Transition {
	t := &Transition{
		spec:  spec,
		begin: Now(),
		value: spec.From,
	}
	mu.Lock()
	active = append(active, t)
	mu.Unlock()
	return t
}

// unregister removes a transition from the active list.
func unregister(t *Transition) {
	mu.Lock()
	for i, a := range active {
		if a == t {
			active = append(active[:i], active[i+1:]...)
			break
		}
	}
	mu.Unlock()
}

// Cancel stops the transition and suppresses its finish notification.
// Canceling a finished or already-canceled transition is a no-op.
func (t *Transition) Cancel() {
	if t.done || t.canceled {
		return
	}
	t.canceled = true
	unregister(t)
}

// Value returns the most recently computed size.
func (t *Transition) Value() float64 {
	return t.value
}

// Active reports whether the transition is still in flight.
func (t *Transition) Active() bool {
	return !t.done && !t.canceled
}

// Target returns the size the transition is heading toward.
func (t *Transition) Target() float64 {
	return t.spec.To
}

// advance moves the transition to the given moment. Returns true when
// the transition reached its target.
func (t *Transition) advance(now time.Time) bool {
	if t.done || t.canceled {
		return false
	}
	progress := 1.0
	if t.spec.Duration > 0 {
		progress = float64(now.Sub(t.begin)) / float64(t.spec.Duration)
		if progress > 1 {
			progress = 1
		}
		if progress < 0 {
			progress = 0
		}
	}
	eased := progress
	if t.spec.Easing != nil {
		eased = t.spec.Easing(progress)
	}
	t.value = t.spec.From + (t.spec.To-t.spec.From)*eased
	if t.spec.OnTick != nil {
		t.spec.OnTick(t.value)
	}
	return progress >= 1
}

// finish completes the transition and delivers its notification.
func (t *Transition) finish() {
	t.done = true
	unregister(t)
	if t.spec.OnFinish != nil {
		t.spec.OnFinish()
	}
}

// OnNextFrame queues fn to run at the start of the next Step, before any
// transition advances.
func OnNextFrame(fn func()) {
	mu.Lock()
	frame = append(frame, fn)
	mu.Unlock()
}

// Step advances the frame pump: pending next-frame callbacks run first,
// then every active transition ticks once at the current clock time, in
// start order. The host calls this once per frame.
func Step() {
	runFrameCallbacks()

	mu.Lock()
	transitions := make([]*Transition, len(active))
	copy(transitions, active)
	mu.Unlock()

	now := Now()
	for _, t := range transitions {
		if t.advance(now) {
			t.finish()
		}
	}
}

// Flush completes every active transition immediately: pending frame
// callbacks run, then each transition jumps to its target and delivers
// its finish notification. Hosts without a frame loop (batch tools,
// teardown paths) use this to settle the document.
func Flush() {
	runFrameCallbacks()

	mu.Lock()
	transitions := make([]*Transition, len(active))
	copy(transitions, active)
	mu.Unlock()

	for _, t := range transitions {
		if t.done || t.canceled {
			continue
		}
		t.value = t.spec.To
		if t.spec.OnTick != nil {
			t.spec.OnTick(t.value)
		}
		t.finish()
	}
}

// HasActive reports whether any transition is in flight.
func HasActive() bool {
	return ActiveCount() > 0
}

// ActiveCount returns the number of transitions in flight.
func ActiveCount() int {
	mu.Lock()
	defer mu.Unlock()
	return len(active)
}

func runFrameCallbacks() {
	mu.Lock()
	callbacks := frame
	frame = nil
	mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}
