// Command teamsplit is the CLI entrypoint for the competition roster splitter.
//
// It parses flags, validates configuration, and either runs input diagnostics
// (--check) or the split pipeline: read the roster CSV, fuzzy-group
// institution names, and write Institutions.csv and Teams.csv.
package main

import (
	"fmt"
	"os"

	"github.com/datamunge/teamsplit/internal/check"
	"github.com/datamunge/teamsplit/internal/config"
	"github.com/datamunge/teamsplit/internal/display"
	"github.com/datamunge/teamsplit/internal/logging"
	"github.com/datamunge/teamsplit/internal/pipeline"
	"github.com/datamunge/teamsplit/internal/prompt"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "teamsplit: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "teamsplit: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "teamsplit: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== Teamsplit v%s (%s) ===", version, commit)
	log.Info("Out: %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
	log.Info("")

	runOnce := func(path string) error {
		_, err := pipeline.Run(&cfg, log, path)
		if err != nil {
			log.Error("%v", err)
		}
		return err
	}

	// Phase 3: With a positional path, run once and exit with its status.
	// Without one, fall into the interactive prompt loop; its outcome is
	// always a clean exit. Per-file errors are reported as they happen.
	if cfg.InputPath != "" {
		if runOnce(cfg.InputPath) != nil {
			return 1
		}
		return 0
	}

	prompt.Loop(os.Stdin, os.Stdout, config.SamplePath, runOnce)
	return 0
}
