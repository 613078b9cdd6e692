package motion

import "testing"

func TestReducedMotionDefault(t *testing.T) {
	if ReducedMotion() {
		t.Error("default preference should report no reduced motion")
	}
}

func TestSetPreference(t *testing.T) {
	prev := SetPreference(StaticPreference{Reduced: true})
	defer SetPreference(prev)

	if !ReducedMotion() {
		t.Error("static preference not applied")
	}

	// Nil restores the default.
	SetPreference(nil)
	if ReducedMotion() {
		t.Error("nil should restore the default preference")
	}
}
