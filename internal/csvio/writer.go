package csvio

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Output file names. Downstream consumers key on these exact names.
const (
	InstitutionsFile = "Institutions.csv"
	TeamsFile        = "Teams.csv"
)

// WriteTables writes the institutions and teams tables (header row included)
// under outDir, creating it if needed. The write is all-or-nothing: both
// tables are staged as .tmp files and renamed only once both have been
// written and synced, so a failure never leaves partial output behind.
// Returns the total bytes written.
func WriteTables(outDir string, institutions, teams [][]string) (int64, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, errors.Wrapf(err, "creating output directory %s", outDir)
	}

	instPath := filepath.Join(outDir, InstitutionsFile)
	teamsPath := filepath.Join(outDir, TeamsFile)
	instTmp := instPath + ".tmp"
	teamsTmp := teamsPath + ".tmp"

	cleanup := func() {
		os.Remove(instTmp)
		os.Remove(teamsTmp)
	}

	instBytes, err := writeCSV(instTmp, institutions)
	if err != nil {
		cleanup()
		return 0, err
	}
	teamBytes, err := writeCSV(teamsTmp, teams)
	if err != nil {
		cleanup()
		return 0, err
	}

	if err := os.Rename(instTmp, instPath); err != nil {
		cleanup()
		return 0, errors.Wrapf(err, "finalizing %s", instPath)
	}
	if err := os.Rename(teamsTmp, teamsPath); err != nil {
		// The first rename already landed; undo it so the contract
		// (both files or neither) holds.
		os.Remove(instPath)
		cleanup()
		return 0, errors.Wrapf(err, "finalizing %s", teamsPath)
	}

	return instBytes + teamBytes, nil
}

// writeCSV writes rows to path and returns the file size. The file is synced
// before close so a rename never publishes a half-flushed table.
func writeCSV(path string, rows [][]string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrapf(err, "creating %s", path)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return 0, errors.Wrapf(err, "writing %s", path)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return 0, errors.Wrapf(err, "syncing %s", path)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return 0, errors.Wrapf(err, "stat %s", path)
	}
	if err := f.Close(); err != nil {
		return 0, errors.Wrapf(err, "closing %s", path)
	}
	return fi.Size(), nil
}
