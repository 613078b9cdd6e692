package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/accordion/pkg/accordion"
	"github.com/go-drift/accordion/pkg/dom"
	"github.com/go-drift/accordion/pkg/errors"
	"github.com/go-drift/accordion/pkg/motion"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Initialize accordions in a document and write it back out",
		Long: `Parse an HTML document, initialize the accordion widgets found in its
body, optionally apply open/close operations by trigger id, settle all
transitions, and render the resulting document.

Configuration is read from accordion.yaml in the working directory when
present, or from the file named by --config. Missing configuration falls
back to the documented defaults.`,
		Usage: "accordion render [--config FILE] [--open IDS] [--close IDS] [--out FILE] <file.html>",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	flags := flag.NewFlagSet("render", flag.ContinueOnError)
	configPath := flags.String("config", "accordion.yaml", "options file")
	openIDs := flags.String("open", "", "comma-separated trigger ids to open")
	closeIDs := flags.String("close", "", "comma-separated trigger ids to close")
	outPath := flags.String("out", "", "output file (default stdout)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("render requires exactly one input file")
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
		fmt.Fprintln(os.Stderr, "no accordion elements found; document unchanged")
	}

	for _, id := range splitIDs(*openIDs) {
		acc.Open(doc.ElementByID(id))
	}
	for _, id := range splitIDs(*closeIDs) {
		acc.Close(doc.ElementByID(id))
	}
	motion.Flush()

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return doc.Render(out)
}

func parseFile(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.Error{Op: "cmd.parseFile", Kind: errors.KindParse, Err: err}
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return nil, &errors.Error{Op: "cmd.parseFile", Kind: errors.KindDocument, Err: err}
	}
	return doc, nil
}

func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
