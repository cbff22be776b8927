// Package main is the entry point for the sortlab teaching console.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/katalvlaran/sortlab/arraygen"
	"github.com/katalvlaran/sortlab/internal/config"
	"github.com/katalvlaran/sortlab/internal/logging"
	"github.com/katalvlaran/sortlab/internal/metrics"
	"github.com/katalvlaran/sortlab/menu"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	// Piped answers are not echoed by a terminal, so print them ourselves.
	echo := !term.IsTerminal(int(os.Stdin.Fd()))
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, echo))
}

// flags holds the command line. Only flags that were set override the config.
type flags struct {
	configPath   string
	verbose      bool
	seed         int64
	logLevel     string
	logFormat    string
	displayLimit int
	showVersion  bool

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{set: map[string]bool{}}
	fs := flag.NewFlagSet("sortlab", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "Path to a .toml or .yaml configuration file")
	fs.BoolVar(&f.verbose, "verbose", false, "Start with step-by-step tracing enabled")
	fs.Int64Var(&f.seed, "seed", 0, "Seed for the sequence generator (0 = default seed)")
	fs.StringVar(&f.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")
	fs.IntVar(&f.displayLimit, "display-limit", 100, "Maximum elements printed (0 = all)")
	fs.BoolVar(&f.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "sortlab - interactive search and sort tutor\n\n")
		fmt.Fprintf(stderr, "Usage: sortlab [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  sortlab                          Start with the default sequence\n")
		fmt.Fprintf(stderr, "  sortlab -verbose -seed 42        Trace every step, reproducible data\n")
		fmt.Fprintf(stderr, "  sortlab -config sortlab.toml     Load settings from a file\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply overlays the flags that were given on the command line onto cfg.
func (f *flags) apply(cfg *config.Config) {
	if f.set["verbose"] {
		cfg.Verbose = f.verbose
	}
	if f.set["seed"] {
		cfg.Seed = f.seed
	}
	if f.set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
	if f.set["log-format"] {
		cfg.Log.Format = f.logFormat
	}
	if f.set["display-limit"] {
		cfg.DisplayLimit = f.displayLimit
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, echo bool) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if f.showVersion {
		fmt.Fprintf(stdout, "sortlab %s\n", version)
		return 0
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger, err := logging.New(stderr, cfg.Log.Format, level)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	spec, err := cfg.Generate.SizeSpec()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("starting", "version", version, "seed", cfg.Seed, "config", f.configPath)

	ctrl := menu.New(
		menu.NewConsole(stdin, stdout, echo),
		stdout,
		menu.WithVerbose(cfg.Verbose),
		menu.WithDisplayLimit(cfg.DisplayLimit),
		menu.WithRand(arraygen.NewRand(cfg.Seed)),
		menu.WithLogger(logger),
		menu.WithRecorder(metrics.NewRecorder()),
		menu.WithInitial(menu.GenerateRequest{
			Spec:       spec,
			Duplicates: cfg.Generate.Duplicates,
			Min:        cfg.Generate.Min,
			Max:        cfg.Generate.Max,
		}),
	)
	if err := ctrl.Run(context.Background()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
