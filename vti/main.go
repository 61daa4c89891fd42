// Command vti estimates the value of a VTI holding in JPY.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/etnz/vti/cmd"
	"github.com/etnz/vti/docs"
	"github.com/etnz/vti/gemini"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("vti")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	cmd.LoadEnv()
	if !cmd.IsVerbose() {
		log.SetOutput(io.Discard)
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
// Install it with COMP_INSTALL=1 vti.
func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"quote": {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"value": {Flags: map[string]complete.Predictor{"n": predict.Something, "json": predict.Nothing}},
			"serve": {Flags: map[string]complete.Predictor{"addr": predict.Something, "n": predict.Something}},
			"topic": {Flags: map[string]complete.Predictor{"list": predict.Nothing}, Args: predict.Set(topics)},
			"help":  {},
		},
		Flags: map[string]complete.Predictor{
			"model":      predict.Set{gemini.DefaultModel, "gemini-2.5-flash", "gemini-2.5-pro"},
			"structured": predict.Nothing,
			"v":          predict.Nothing,
		},
	}
}
