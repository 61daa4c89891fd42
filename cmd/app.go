// Package cmd implements the vti command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/etnz/vti/gemini"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Environment variables read by the application.
const (
	EnvAPIKey  = "VTI_API_KEY"
	EnvModel   = "VTI_MODEL"
	EnvVerbose = "VTI_VERBOSE"
)

// fallback environment variables for the API key, as read by the Gemini SDK.
var apiKeyEnvs = []string{EnvAPIKey, "GEMINI_API_KEY", "GOOGLE_API_KEY"}

var errMissingAPIKey = fmt.Errorf("missing API key, set %s", EnvAPIKey)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	model      = flag.String("model", "", "Gemini model used to fetch the quote (default $"+EnvModel+" or "+gemini.DefaultModel+")")
	structured = flag.Bool("structured", false, "ask for a JSON answer instead of the textual markers")
	Verbose    = flag.Bool("v", false, "print diagnostics (default $"+EnvVerbose+")")
)

// Commands are the vti subcommands.
var Commands = []subcommands.Command{
	&quoteCmd{},
	&valueCmd{},
	&serveCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// LoadEnv loads the .env file of the working directory, if any, into the
// environment. Variables already set are not overridden.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("ignoring .env file: %v", err)
	}
}

// IsVerbose reports whether diagnostics are enabled, by flag or environment.
func IsVerbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

func modelName() string {
	if *model != "" {
		return *model
	}
	if m := os.Getenv(EnvModel); m != "" {
		return m
	}
	return gemini.DefaultModel
}

func apiKey() string {
	for _, env := range apiKeyEnvs {
		if k := os.Getenv(env); k != "" {
			return k
		}
	}
	return ""
}

// newFetcher creates the quote fetcher from the global flags and environment.
func newFetcher(ctx context.Context) (*gemini.Fetcher, error) {
	key := apiKey()
	if key == "" {
		return nil, errMissingAPIKey
	}
	client, err := gemini.NewClient(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini's client: %w", err)
	}
	f := gemini.New(client.Models, modelName())
	f.Structured = *structured
	log.Printf("fetching with %v", f)
	return f, nil
}

// fetcherStatus reports the failure to create the fetcher and its exit status.
func fetcherStatus(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, errMissingAPIKey) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
