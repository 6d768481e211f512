package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into grouping, cleanup, behavior, display, and utility.
// Negated flags (e.g. --no-clean) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is shown in --version and help; override at build time with
// -ldflags "-X github.com/datamunge/teamsplit/internal/config.version=...".
var version = "1.0.0-dev"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, bad threshold value).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("teamsplit", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineGroupingFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "teamsplit v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noClean -> CleanFields=false) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noClean     bool
	strict      bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineGroupingFlags registers -t/--threshold and -o/--output.
func defineGroupingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "Similarity threshold 0-100 for merging institution names")
	fs.IntVar(&cfg.Threshold, "t", cfg.Threshold, "Same as --threshold")
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory for Institutions.csv and Teams.csv")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Same as --output")
}

// defineBehaviorFlags registers dry-run, strict, no-clean.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Process and report; do not write output files")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&n.strict, "strict", false, "Reject the whole run on blank institution names instead of skipping records")
	fs.BoolVar(&n.noClean, "no-clean", false, "Disable field cleanup (trim/capitalize/state expansion)")
}

// defineDisplayFlags registers --color, --no-color, verbose, preview, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (includes output table previews)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.IntVar(&cfg.PreviewRows, "preview", cfg.PreviewRows, "Rows shown per table preview in verbose mode")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Validate the input file header and report stats, then exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg
// (e.g. noClean -> CleanFields=false, strict -> EmptyName=reject).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noClean {
		cfg.CleanFields = false
	}
	if n.strict {
		cfg.EmptyName = EmptyReject
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputPath from the optional positional argument.
// With no argument the interactive prompt loop supplies the path at runtime.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.InputPath = strings.TrimSpace(args[0])
		return nil
	default:
		return fmt.Errorf("expected at most one input file argument, got %d", len(args))
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Teamsplit v" + version + " - competition roster splitter with fuzzy institution grouping"},
		{"", ""},
		{"  teamsplit [OPTIONS] [input_csv]", ""},
		{"", ""},
		{"  Without an input file, an interactive prompt asks for one:", ""},
		{"  enter a path, '1' for the bundled sample, or '2' to quit.", ""},
		{"", ""},
		{"Grouping", ""},
		{"  -t, --threshold <0-100>", "Similarity threshold for merging names (default: 87)"},
		{"  -o, --output <dir>", "Output directory (default: results)"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Process and report; do not write output files"},
		{"  --strict", "Abort on blank institution names (default: skip record)"},
		{"  --no-clean", "Disable trim/capitalize/state-expansion cleanup"},
		{"", ""},
		{"Display", ""},
		{"  --preview <n>", "Rows per table preview in verbose mode (default: 5)"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Validate input header and report stats, then exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
