package accordion

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/accordion/pkg/dom"
	"github.com/go-drift/accordion/pkg/errors"
	"github.com/go-drift/accordion/pkg/motion"
)

// Default configuration values. Every unspecified Options field falls
// back to one of these.
const (
	DefaultSectionSelector = "[data-accordion-section]"
	DefaultHeaderSelector  = "[data-accordion-header]"
	// data-accordion-button is an accepted alias for the trigger marker.
	DefaultTriggerSelector = "[data-accordion-trigger], [data-accordion-button]"
	DefaultContentSelector = "[data-accordion-content]"

	DefaultDuration = 300 * time.Millisecond
	DefaultEasing   = "ease-in-out"
)

// Options configures an accordion instance. The zero value selects every
// default; fields are merged over defaults individually.
type Options struct {
	// Selector identifies the structural roles within the root.
	Selector SelectorOptions `yaml:"selector"`

	// Animation controls the open/close transition.
	Animation AnimationOptions `yaml:"animation"`

	// SingleLevel switches discovery to the two-collection variant:
	// only triggers and contents are matched, without section/header
	// structure.
	SingleLevel bool `yaml:"singleLevel"`

	// AnimateSection animates the whole section box instead of the
	// content. Ignored in the single-level variant.
	AnimateSection bool `yaml:"animateSection"`

	// Matcher overrides the structural matcher. Nil selects the CSS
	// matcher.
	Matcher dom.Matcher `yaml:"-"`
}

// SelectorOptions holds the structural selectors.
type SelectorOptions struct {
	Section string `yaml:"section"`
	Header  string `yaml:"header"`
	Trigger string `yaml:"trigger"`
	Content string `yaml:"content"`
}

// AnimationOptions holds transition timing.
type AnimationOptions struct {
	// Duration is the transition length. In YAML it accepts Go duration
	// strings ("250ms") or bare numbers interpreted as milliseconds.
	Duration Duration `yaml:"duration"`

	// Easing names the timing function: "linear", "ease", "ease-in",
	// "ease-out", "ease-in-out", or "cubic-bezier(x1, y1, x2, y2)".
	Easing string `yaml:"easing"`
}

// Duration is a time.Duration with CSS-friendly YAML decoding.
type Duration time.Duration

// UnmarshalYAML accepts "300ms"-style duration strings or bare numbers
// interpreted as milliseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var ms float64
	if err := value.Decode(&ms); err != nil {
		return fmt.Errorf("invalid duration %v", value.Value)
	}
	*d = Duration(time.Duration(ms * float64(time.Millisecond)))
	return nil
}

// LoadOptions reads an accordion.yaml-style options file. A missing file
// yields zero Options, which resolve to all defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Options{}, nil
		}
		return Options{}, &errors.Error{Op: "accordion.LoadOptions", Kind: errors.KindConfig, Err: err}
	}
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, &errors.Error{Op: "accordion.LoadOptions", Kind: errors.KindConfig, Err: err}
	}
	return opts, nil
}

// settings is the fully resolved configuration. Resolution never fails;
// every gap is filled from a default, and an active reduced-motion
// preference forces the duration to zero.
type settings struct {
	selector       SelectorOptions
	duration       time.Duration
	easing         motion.Easing
	singleLevel    bool
	animateSection bool
	matcher        dom.Matcher
}

func resolveOptions(opts Options) settings {
	sel := opts.Selector
	if sel.Section == "" {
		sel.Section = DefaultSectionSelector
	}
	if sel.Header == "" {
		sel.Header = DefaultHeaderSelector
	}
	if sel.Trigger == "" {
		sel.Trigger = DefaultTriggerSelector
	}
	if sel.Content == "" {
		sel.Content = DefaultContentSelector
	}

	duration := time.Duration(opts.Animation.Duration)
	if duration == 0 {
		duration = DefaultDuration
	}
	if motion.ReducedMotion() {
		duration = 0
	}

	easingName := opts.Animation.Easing
	if easingName == "" {
		easingName = DefaultEasing
	}

	matcher := opts.Matcher
	if matcher == nil {
		matcher = dom.NewCSSMatcher()
	}

	return settings{
		selector:       sel,
		duration:       duration,
		easing:         easingByName(easingName),
		singleLevel:    opts.SingleLevel,
		animateSection: opts.AnimateSection,
		matcher:        matcher,
	}
}

// easingByName resolves a timing-function name. Unrecognized names fall
// back to ease-in-out rather than erroring.
func easingByName(name string) motion.Easing {
	switch strings.TrimSpace(name) {
	case "linear":
		return motion.Linear
	case "ease":
		return motion.Ease
	case "ease-in":
		return motion.EaseIn
	case "ease-out":
		return motion.EaseOut
	case "ease-in-out":
		return motion.EaseInOut
	}
	if fn := parseCubicBezier(name); fn != nil {
		return fn
	}
	return motion.EaseInOut
}

func parseCubicBezier(name string) motion.Easing {
	s := strings.TrimSpace(name)
	if !strings.HasPrefix(s, "cubic-bezier(") || !strings.HasSuffix(s, ")") {
		return nil
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "cubic-bezier("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil
	}
	var points [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil
		}
		points[i] = v
	}
	return motion.CubicBezier(points[0], points[1], points[2], points[3])
}
