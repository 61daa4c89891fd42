package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/etnz/vti"
	"github.com/etnz/vti/presenter"
	"github.com/etnz/vti/web"
	"github.com/google/subcommands"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr   string
	shares string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the valuation page to browsers" }
func (*serveCmd) Usage() string {
	return `vti serve [-addr <address>] [-n <shares>]

  Serves the valuation page on <address>. The quote is fetched on the first
  page load, and again each time the refresh button is pressed.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "localhost:8080", "address to listen on")
	f.StringVar(&c.shares, "n", defaultShares, "initial number of shares")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !vti.ValidShareInput(c.shares) {
		fmt.Fprintf(os.Stderr, "Error: invalid share count %q, use digits with at most one decimal point\n", c.shares)
		return subcommands.ExitUsageError
	}

	fetcher, err := newFetcher(ctx)
	if err != nil {
		return fetcherStatus(err)
	}

	// a server always logs, fetch failures are only visible there.
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	srv := &http.Server{
		Addr:              c.addr,
		Handler:           web.New(presenter.New(fetcher, vti.ShareCount(c.shares))),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	log.Printf("serving on http://%s", c.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
