package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/etnz/vti/renderer"
	"github.com/google/subcommands"
)

// printMarkdown prints markdown on the standard output, rendered for the
// terminal.
func printMarkdown(md string) {
	fmt.Print(renderer.Terminal(md))
}

// printJSON prints v as indented JSON on the standard output.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
