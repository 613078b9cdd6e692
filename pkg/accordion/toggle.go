package accordion

import (
	"strconv"

	"github.com/go-drift/accordion/pkg/dom"
	"github.com/go-drift/accordion/pkg/motion"
)

// handleClick flips the panel at index toward the opposite of its
// requested state.
func (a *Accordion) handleClick(i int) {
	a.toggle(i, !a.isOpen(i), false)
}

// handleBeforematch opens a panel revealed by in-page search. The reveal
// must not be delayed by a decorative transition, so it runs at zero
// duration, overriding any animation already in flight.
func (a *Accordion) handleBeforematch(i int) {
	if a.isOpen(i) {
		return
	}
	a.toggle(i, true, true)
}

// toggle is the core state machine transition. It moves the panel at
// index i toward open or closed, enforcing single-open-per-group and the
// one-transition-per-index rule. isMatch marks a programmatic reveal,
// which animates at zero duration.
func (a *Accordion) toggle(i int, open, isMatch bool) {
	if open == a.isOpen(i) {
		return
	}
	trigger := a.triggers[i]

	// Group exclusion: opening a grouped trigger closes the group's
	// current member first, with the same animation policy.
	if group := trigger.AttrOr(attrName, ""); group != "" {
		if open {
			if j, ok := a.openGroups[group]; ok && j != i {
				a.toggle(j, false, isMatch)
			}
			a.openGroups[group] = i
		} else if j, ok := a.openGroups[group]; ok && j == i {
			delete(a.openGroups, group)
		}
	}

	content := a.contents[i]
	box := a.animatedBox(i)

	// The start size is whatever is rendered right now: a mid-flight
	// override if a transition is being interrupted, the collapsed size
	// if the panel is settled closed.
	start := a.renderedSize(i)

	if tr := a.transitions[i]; tr != nil {
		tr.Cancel()
		a.transitions[i] = nil
	}

	// Content stays rendered for the whole transition, in either
	// direction.
	content.SetHidden(dom.Visible)

	// The ARIA state flips in lockstep with the perceived animation
	// start, not a frame early.
	motion.OnNextFrame(func() {
		trigger.SetAttr("aria-expanded", strconv.FormatBool(open))
	})

	box.SetStyleValue("overflow", "clip")

	target := a.collapsedSize(i)
	if open {
		target = box.NaturalBlockSize()
	}
	duration := a.settings.duration
	if isMatch || motion.ReducedMotion() {
		duration = 0
	}

	if open {
		a.states[i] = stateOpening
	} else {
		a.states[i] = stateClosing
	}

	a.transitions[i] = motion.Start(motion.Spec{
		From:     start,
		To:       target,
		Duration: duration,
		Easing:   a.settings.easing,
		OnTick: func(v float64) {
			box.SetStyleValue("block-size", formatPx(v))
		},
		OnFinish: func() {
			a.transitions[i] = nil
			if open {
				a.states[i] = stateOpen
			} else {
				a.states[i] = stateClosed
				// hidden="until-found" keeps the closed panel
				// discoverable by in-page search.
				content.SetHidden(dom.HiddenUntilFound)
			}
			box.RemoveStyleValue("overflow")
			box.RemoveStyleValue("block-size")
		},
	})

	a.applyLabel(trigger, open)
}

// animatedBox returns the element whose block size the transition drives:
// the content, or the whole section in the section-animating variant.
func (a *Accordion) animatedBox(i int) *dom.Element {
	if a.settings.animateSection && !a.settings.singleLevel && i < len(a.sections) {
		return a.sections[i]
	}
	return a.contents[i]
}

// renderedSize returns the animated box's current rendered block size.
// A mid-flight block-size override always wins. The section box is never
// hidden itself, so its rendered size subtracts the paired content's
// contribution while the content is hidden. Must be read before the
// content is unhidden for the transition.
func (a *Accordion) renderedSize(i int) float64 {
	box := a.animatedBox(i)
	if box == a.contents[i] {
		return box.BlockSize()
	}
	if box.StyleValue("block-size") != "" {
		return box.BlockSize()
	}
	size := box.NaturalBlockSize()
	if a.contents[i].Hidden() != dom.Visible {
		size -= a.contents[i].NaturalBlockSize()
	}
	return size
}

// collapsedSize returns the size the animated box settles at when the
// panel is closed: zero for a content box, the content-less section size
// in the section variant.
func (a *Accordion) collapsedSize(i int) float64 {
	box := a.animatedBox(i)
	if box == a.contents[i] {
		return 0
	}
	return box.NaturalBlockSize() - a.contents[i].NaturalBlockSize()
}

// applyLabel updates the trigger's accessible label when it declares
// distinct expanded/collapsed overrides.
func (a *Accordion) applyLabel(trigger *dom.Element, open bool) {
	expanded := trigger.AttrOr(attrExpandedLabel, "")
	collapsed := trigger.AttrOr(attrCollapsedLabel, "")
	if expanded == "" || collapsed == "" || expanded == collapsed {
		return
	}
	if open {
		trigger.SetAttr("aria-label", expanded)
	} else {
		trigger.SetAttr("aria-label", collapsed)
	}
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
