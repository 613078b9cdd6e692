// Command accordion initializes accordion widgets in HTML documents from
// the command line.
package main

import (
	"os"

	"github.com/go-drift/accordion/cmd/accordion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
