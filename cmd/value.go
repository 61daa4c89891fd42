package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/vti"
	"github.com/etnz/vti/presenter"
	"github.com/etnz/vti/renderer"
	"github.com/google/subcommands"
)

// defaultShares is the share count shown before the user types any.
const defaultShares = "10"

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	shares string
	json   bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "estimate the value of a VTI holding in JPY" }
func (*valueCmd) Usage() string {
	return `vti value [-n <shares>] [-json]

  Fetches the current quote and displays the estimated value of <shares>
  VTI shares in USD and JPY. See 'vti topic shares'.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.shares, "n", defaultShares, "number of shares held, digits with at most one decimal point")
	f.BoolVar(&c.json, "json", false, "print the valuation as JSON")
}

func (c *valueCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !vti.ValidShareInput(c.shares) {
		fmt.Fprintf(os.Stderr, "Error: invalid share count %q, use digits with at most one decimal point\n", c.shares)
		return subcommands.ExitUsageError
	}

	fetcher, err := newFetcher(ctx)
	if err != nil {
		return fetcherStatus(err)
	}

	p := presenter.New(fetcher, vti.ShareCount(c.shares))
	if err := p.Refresh(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		return printJSON(p.View())
	}
	printMarkdown(renderer.Markdown(p.View()))
	return subcommands.ExitSuccess
}
