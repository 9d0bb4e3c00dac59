package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/reoring/hammer/cmd/hammer/commands"
)

const (
	cmdName   = "hammer"
	shortDesc = "Convert schema trees to JSON Schema."
	longDesc  = `hammer converts a schema tree, described in YAML or JSON, into a
JSON Schema document targeting draft 3 or draft 4.

Each node names its kind (mapping, sequence, tuple, set, string, int, ...)
and may carry a validator (range, length, one_of, regex, email, url).
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
