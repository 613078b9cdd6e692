package motion

// Preference reports environment accessibility preferences that affect
// motion. The default implementation reports no preference; hosts wire
// their platform's prefers-reduced-motion signal via SetPreference.
type Preference interface {
	ReducedMotion() bool
}

type noPreference struct{}

func (noPreference) ReducedMotion() bool { return false }

var preference Preference = noPreference{}

// SetPreference replaces the motion preference source. Returns the
// previous source so callers can restore it during cleanup. Pass nil to
// restore the default.
func SetPreference(p Preference) Preference {
	prev := preference
	if p == nil {
		p = noPreference{}
	}
	preference = p
	return prev
}

// ReducedMotion reports whether the environment prefers reduced motion.
// When true, resolved transition durations collapse to zero.
func ReducedMotion() bool {
	return preference.ReducedMotion()
}

// StaticPreference is a fixed Preference value, convenient for hosts
// that query the platform once and for tests.
type StaticPreference struct {
	Reduced bool
}

// ReducedMotion implements Preference.
func (p StaticPreference) ReducedMotion() bool { return p.Reduced }
