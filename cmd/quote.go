package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/vti/renderer"
	"github.com/google/subcommands"
)

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct {
	json bool
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch the VTI price and the USD/JPY rate" }
func (*quoteCmd) Usage() string {
	return `vti quote [-json]

  Fetches the current VTI price, the USD/JPY rate and a market summary,
  with the web sources used to answer.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the quote as JSON")
}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fetcher, err := newFetcher(ctx)
	if err != nil {
		return fetcherStatus(err)
	}

	q, err := fetcher.Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		return printJSON(q)
	}
	printMarkdown(renderer.QuoteMarkdown(q))
	return subcommands.ExitSuccess
}
