package cmd

import (
	"flag"
	"fmt"

	"github.com/go-drift/accordion/pkg/accordion"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "List the accordion panels discovered in a document",
		Long: `Parse an HTML document, initialize the accordion widgets found in its
body, and print one line per discovered trigger/panel pair: index,
trigger id, content id, group key, and initial expanded state.`,
		Usage: "accordion inspect [--config FILE] <file.html>",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	flags := flag.NewFlagSet("inspect", flag.ContinueOnError)
	configPath := flags.String("config", "accordion.yaml", "options file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("inspect requires exactly one input file")
	}

	opts, err := accordion.LoadOptions(*configPath)
	if err != nil {
		return err
	}

	doc, err := parseFile(flags.Arg(0))
	if err != nil {
		return err
	}

	acc := accordion.New(doc.Body(), opts)
	if acc.Inert() {
		fmt.Println("no accordion elements found")
		return nil
	}

	triggers := acc.Triggers()
	contents := acc.Contents()
	fmt.Printf("%-5s %-32s %-32s %-12s %s\n", "INDEX", "TRIGGER", "CONTENT", "GROUP", "EXPANDED")
	for i, trigger := range triggers {
		group := trigger.AttrOr("data-accordion-name", "-")
		if group == "" {
			group = "-"
		}
		fmt.Printf("%-5d %-32s %-32s %-12s %s\n",
			i,
			trigger.ID(),
			contents[i].ID(),
			group,
			trigger.AttrOr("aria-expanded", "false"),
		)
	}
	return nil
}
