package accordion_test

import (
	"fmt"
	"strings"

	"github.com/go-drift/accordion/pkg/accordion"
	"github.com/go-drift/accordion/pkg/dom"
	"github.com/go-drift/accordion/pkg/motion"
)

// This example wires an accordion into a document and opens a panel.
func Example() {
	markup := `<html><body><div id="faq">
		<section data-accordion-section>
			<h3 data-accordion-header>
				<button id="q1" data-accordion-trigger>What is it?</button>
			</h3>
			<div id="a1" data-accordion-content><p>A collapsible panel.</p></div>
		</section>
	</div></body></html>`

	doc, err := dom.Parse(strings.NewReader(markup))
	if err != nil {
		panic(err)
	}

	acc := accordion.New(doc.ElementByID("faq"), accordion.Options{})
	acc.Open(doc.ElementByID("q1"))

	// Hosts normally pump motion.Step once per frame; a batch caller can
	// settle everything at once.
	motion.Flush()

	fmt.Println("expanded:", doc.ElementByID("q1").AttrOr("aria-expanded", ""))
	fmt.Println("controls:", doc.ElementByID("q1").AttrOr("aria-controls", ""))
	fmt.Println("hidden:", doc.ElementByID("a1").HasAttr("hidden"))

	// Output:
	// expanded: true
	// controls: a1
	// hidden: false
}

// This example reads widget options from YAML-style configuration.
func Example_options() {
	opts := accordion.Options{
		Selector: accordion.SelectorOptions{
			Trigger: "[data-faq-question]",
			Content: "[data-faq-answer]",
		},
		SingleLevel: true,
	}

	markup := `<html><body><div id="faq">
		<button id="q1" data-faq-question>Question</button>
		<div data-faq-answer>Answer</div>
	</div></body></html>`

	doc, err := dom.Parse(strings.NewReader(markup))
	if err != nil {
		panic(err)
	}

	acc := accordion.New(doc.ElementByID("faq"), opts)
	fmt.Println("panels:", len(acc.Triggers()))

	// Output:
	// panels: 1
}
