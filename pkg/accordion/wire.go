package accordion

import (
	"strings"

	"github.com/google/uuid"

	"github.com/go-drift/accordion/pkg/dom"
)

// wire runs the accessibility setup exactly once per instance. It only
// fills gaps: author-supplied ids, disabled state, and preset
// aria-expanded values are never overwritten.
func (a *Accordion) wire() {
	for i := range a.triggers {
		trigger, content := a.triggers[i], a.contents[i]

		if content.ID() == "" {
			content.SetID("accordion-panel-" + uuid.NewString())
		}
		trigger.SetAttr("aria-controls", content.ID())
		if trigger.ID() == "" {
			trigger.SetID("accordion-trigger-" + uuid.NewString())
		}
		if !trigger.HasAttr("aria-expanded") {
			trigger.SetAttr("aria-expanded", "false")
		}

		if trigger.AttrOr("aria-expanded", "") == "true" {
			a.states[i] = stateOpen
			content.SetHidden(dom.Visible)
			if group := trigger.AttrOr(attrName, ""); group != "" {
				// First preset-open member claims the group; exclusion
				// applies from the first toggle on.
				if _, taken := a.openGroups[group]; !taken {
					a.openGroups[group] = i
				}
			}
		} else if content.Hidden() == dom.Visible {
			content.SetHidden(dom.HiddenUntilFound)
		}

		focusable := trigger.AttrOr("aria-disabled", "") != "true" && !trigger.HasAttr("disabled")
		if focusable {
			trigger.SetAttr("tabindex", "0")
		} else {
			trigger.SetAttr("tabindex", "-1")
			trigger.SetStyleValue("pointer-events", "none")
		}

		index := i
		trigger.AddEventListener("click", func(*dom.Event) {
			a.handleClick(index)
		})
		trigger.AddEventListener("keydown", a.handleKeydown)
		content.AddEventListener("beforematch", func(*dom.Event) {
			a.handleBeforematch(index)
		})

		labelledBy := content.AttrOr("aria-labelledby", "")
		switch {
		case labelledBy == "":
			content.SetAttr("aria-labelledby", trigger.ID())
		case !hasToken(labelledBy, trigger.ID()):
			content.SetAttr("aria-labelledby", labelledBy+" "+trigger.ID())
		}
		content.SetAttr("role", "region")
	}

	a.root.SetAttr(attrInitialized, "")
}

func hasToken(list, token string) bool {
	for _, t := range strings.Fields(list) {
		if t == token {
			return true
		}
	}
	return false
}
