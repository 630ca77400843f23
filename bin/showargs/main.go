// Command showargs parses its own command line and prints what it found.
//
//   showargs -datadir=/tmp/node --port=18333 -nolisten -connect=a -connect=b
//   showargs -help
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/justjake/go-getarg/cli"
	"github.com/justjake/go-getarg/env"
	"github.com/justjake/go-getarg/params"
	"github.com/kr/pretty"
)

type config struct {
	DataDir string      `arg:"-datadir" help:"Data directory"`
	Port    int         `help:"Listen port"`
	Listen  bool        `help:"Accept incoming connections"`
	Upnp    bool        `help:"Map the listen port with UPnP"`
	Connect []string    `help:"Connect only to this node. Pass more than once."`
	Exclude cli.Regexps `help:"Skip nodes matching this pattern. Pass more than once."`
	Debug   bool        `help:"Log at debug level"`
	LogJSON bool        `arg:"-logjson" help:"Log as JSON"`
	Help    bool        `help:"Show this help"`
}

func defaultConfig() config {
	return config{DataDir: "~/.node", Port: 8333, Listen: true}
}

func main() {
	args := env.SystemArgs()
	store := args.Params()
	if err := run(os.Stdout, args.ProcessName(), store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(out io.Writer, name string, store *params.Store) error {
	cfg := defaultConfig()
	slog.SetDefault(newLogger(store.HasFlag("-debug"), store.HasFlag("-logjson")))

	if err := cli.Decode(store, &cfg); err != nil {
		return err
	}

	if cfg.Help {
		defaults := defaultConfig()
		ui, err := cli.Describe(name, "shows how its command line was parsed", &defaults)
		if err != nil {
			return err
		}
		ui.Overview(out)
		return nil
	}

	slog.Info("Parsed command line.", "flags", len(store.Flags()), "positional", len(store.Positional()))
	store.Dump(out)
	pretty.Fprintf(out, "%# v\n", cfg)
	return nil
}

func newLogger(debug, json bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
