package pipeline

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/datamunge/teamsplit/internal/config"
	"github.com/datamunge/teamsplit/internal/csvio"
	"github.com/datamunge/teamsplit/internal/display"
	"github.com/datamunge/teamsplit/internal/grouper"
	"github.com/datamunge/teamsplit/internal/logging"
	"github.com/datamunge/teamsplit/internal/normalize"
	"github.com/datamunge/teamsplit/internal/tables"
)

// ErrBlankInstitution is returned (wrapped with the record number) when a
// record has a blank institution name and the policy is "reject".
var ErrBlankInstitution = errors.New("record has a blank institution name")

// Run executes one full split of inputPath: read → clean → group → build →
// write. On any error nothing is written. Stats are returned even on failure
// so callers can report progress.
func Run(cfg *config.Config, log *logging.Logger, inputPath string) (RunStats, error) {
	var stats RunStats

	records, err := csvio.ReadRecords(inputPath)
	if err != nil {
		return stats, err
	}
	stats.Total = len(records)

	logRunHeader(cfg, log, inputPath, &stats)

	// --- Clean and filter ---
	retained := make([]csvio.RawRecord, 0, len(records))
	for i, rec := range records {
		if cfg.CleanFields {
			rec = normalize.Clean(rec)
		} else {
			rec.Institution = strings.TrimSpace(rec.Institution)
		}

		if rec.Institution == "" {
			if cfg.EmptyName == config.EmptyReject {
				return stats, errors.Wrapf(ErrBlankInstitution, "record %d", i+1)
			}
			stats.SkippedEmpty++
			log.Quality("Record %d has a blank institution name, skipping", i+1)
			continue
		}
		retained = append(retained, rec)
	}
	stats.Retained = len(retained)

	// --- Group institution names, strictly in input order ---
	g := grouper.New(cfg.Threshold, nil)
	assignments := make([]int, len(retained))
	for i, rec := range retained {
		assignments[i] = g.Resolve(rec.Institution)
	}
	stats.Institutions = g.Len()

	// --- Build output relations ---
	out, err := tables.Build(retained, assignments, g.Clusters())
	if err != nil {
		return stats, err
	}
	stats.Teams = len(out.Teams)

	if cfg.Verbose {
		display.RenderPreview(os.Stdout, "Institutions", out.InstitutionRows(), cfg.PreviewRows)
		display.RenderPreview(os.Stdout, "Teams", out.TeamRows(), cfg.PreviewRows)
	}

	// --- Write both tables atomically ---
	if cfg.DryRun {
		log.Success("[DRY] Would write %s and %s to %s",
			csvio.InstitutionsFile, csvio.TeamsFile, cfg.OutputDir)
		logSummary(cfg, log, &stats)
		return stats, nil
	}

	stats.OutputBytes, err = csvio.WriteTables(cfg.OutputDir, out.InstitutionRows(), out.TeamRows())
	if err != nil {
		return stats, err
	}

	log.Success("Files saved: %s, %s",
		cfg.OutputDir+"/"+csvio.InstitutionsFile, cfg.OutputDir+"/"+csvio.TeamsFile)
	logSummary(cfg, log, &stats)
	return stats, nil
}

// --- Logging helpers ---

func logRunHeader(cfg *config.Config, log *logging.Logger, inputPath string, stats *RunStats) {
	log.Info("Read %d records from %s", stats.Total, inputPath)
	log.Info("Threshold: %d", cfg.Threshold)
	if cfg.CleanFields {
		log.Info("Cleanup: trim, capitalize, expand US states, fill blank states")
	} else {
		log.Info("Cleanup: off (names trimmed only)")
	}
	if cfg.EmptyName == config.EmptyReject {
		log.Info("Blank institution names: reject run")
	} else {
		log.Info("Blank institution names: skip record")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d records in, %d teams out, %d institutions", stats.Total, stats.Teams, stats.Institutions)
	if stats.SkippedEmpty > 0 {
		log.Quality("  Skipped %d record(s) with blank institution names", stats.SkippedEmpty)
	}
	if merged := stats.MergedNames(); merged > 0 {
		log.Info("  Merged %d near-duplicate name(s)", merged)
	}
	if cfg.DryRun {
		log.Info("  Output size: n/a (dry run)")
		return
	}
	log.Info("  Output size: %s", display.FormatBytes(stats.OutputBytes))
}
