// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults are threshold 87, the results/ output directory, and
// the bundled 2015 sample file.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// EmptyNamePolicy decides what happens to a record whose Institution field is
// blank after trimming.
type EmptyNamePolicy string

const (
	EmptySkip   EmptyNamePolicy = "skip"   // Drop the record from both outputs (default).
	EmptyReject EmptyNamePolicy = "reject" // Abort the run before any output is written.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// SamplePath is the bundled sample dataset, selectable from the interactive
// prompt with "1".
const SamplePath = "data/2015.csv"

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths. InputPath may be empty, in which case the interactive prompt
	// loop asks for it.
	InputPath string
	OutputDir string // Default: "results".

	// Grouping.
	Threshold int // Similarity threshold 0-100. Default: 87.

	// Field cleanup.
	CleanFields bool // Default: true. Cleared by --no-clean.

	// Behavior flags.
	DryRun    bool
	EmptyName EmptyNamePolicy // Default: "skip". Set to "reject" by --strict.

	// Display and logging.
	Verbose     bool
	PreviewRows int       // Rows shown per output table in verbose mode. Default: 5.
	ColorMode   ColorMode // Default: "auto".
	LogFile     string    // Optional log file path.
	CheckOnly   bool      // Run --check input diagnostics and exit.
}

// DefaultConfig returns a Config with every field at its default. Used as
// the base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		OutputDir:   "results",
		Threshold:   87,
		CleanFields: true,
		DryRun:      false,
		EmptyName:   EmptySkip,
		Verbose:     false,
		PreviewRows: 5,
		ColorMode:   ColorAuto,
		CheckOnly:   false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that the threshold is in range, enum fields hold valid
// values, and the output directory is non-empty. The input path may still be
// empty at this point; the prompt loop supplies it later.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100 (got %d)", c.Threshold)
	}

	switch c.EmptyName {
	case EmptySkip, EmptyReject:
		// valid
	default:
		return errors.New("invalid empty-name policy (use 'skip' or 'reject')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.PreviewRows < 0 {
		return errors.New("preview row count must not be negative")
	}

	if c.CheckOnly {
		if c.InputPath == "" {
			return errors.New("--check needs an input file argument")
		}
		return nil
	}
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}
