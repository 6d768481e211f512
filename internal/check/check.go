// Package check implements --check mode: validate an input file's header and
// report record stats without grouping anything or writing any output.
package check

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/datamunge/teamsplit/internal/config"
	"github.com/datamunge/teamsplit/internal/csvio"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck validates cfg.InputPath and reports what a real run would see:
// header completeness, record count, distinct raw institution names, and
// blank-name records. Returns false when the file would fail a real run.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Input Check ===")
	log.Info("File: %s", cfg.InputPath)

	records, err := csvio.ReadRecords(cfg.InputPath)
	if err != nil {
		var missing *csvio.MissingColumnsError
		if errors.As(err, &missing) {
			log.Error("Header is missing %d required column(s):", len(missing.Missing))
			for _, col := range missing.Missing {
				log.Error("  %s", col)
			}
		} else {
			log.Error("%v", err)
		}
		return false
	}

	log.Success("Header OK: all %d required columns present", len(csvio.RequiredColumns))
	log.Info("Records: %d", len(records))

	names := make(map[string]bool)
	blank := 0
	for _, rec := range records {
		name := strings.TrimSpace(rec.Institution)
		if name == "" {
			blank++
			continue
		}
		names[name] = true
	}
	log.Info("Distinct raw institution names: %d (before fuzzy grouping)", len(names))

	if blank > 0 {
		if cfg.EmptyName == config.EmptyReject {
			log.Error("%d record(s) have blank institution names; a run with --strict would fail", blank)
			return false
		}
		log.Warn("%d record(s) have blank institution names and would be skipped", blank)
	}
	return true
}
