package motion

import (
	"math"
	"testing"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Easing{
		"linear":      Linear,
		"ease":        Ease,
		"ease-in":     EaseIn,
		"ease-out":    EaseOut,
		"ease-in-out": EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		// Out-of-range inputs clamp.
		if got := curve(-0.5); got != 0 {
			t.Errorf("%s(-0.5) = %v, want 0", name, got)
		}
		if got := curve(1.5); got != 1 {
			t.Errorf("%s(1.5) = %v, want 1", name, got)
		}
	}
}

func TestLinearIdentity(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := Linear(v); got != v {
			t.Errorf("Linear(%v) = %v", v, got)
		}
	}
}

func TestCubicBezierMatchesLinear(t *testing.T) {
	// cubic-bezier(t, t, t, t) along the diagonal is the identity.
	curve := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, v := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		if got := curve(v); math.Abs(got-v) > 1e-5 {
			t.Errorf("diagonal bezier(%v) = %v, want ~%v", v, got, v)
		}
	}
}

func TestEaseInOutShape(t *testing.T) {
	// Symmetric curve: slow at the edges, midpoint at 0.5.
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-5 {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", got)
	}
	if EaseInOut(0.1) >= 0.1 {
		t.Error("EaseInOut should start slower than linear")
	}
	if EaseInOut(0.9) <= 0.9 {
		t.Error("EaseInOut should end faster than linear")
	}
}

func TestCurvesMonotonic(t *testing.T) {
	for name, curve := range map[string]Easing{
		"ease":        Ease,
		"ease-in":     EaseIn,
		"ease-out":    EaseOut,
		"ease-in-out": EaseInOut,
	} {
		prev := curve(0)
		for i := 1; i <= 100; i++ {
			v := curve(float64(i) / 100)
			if v < prev-1e-9 {
				t.Errorf("%s not monotonic at %d/100: %v < %v", name, i, v, prev)
				break
			}
			prev = v
		}
	}
}
