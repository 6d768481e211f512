package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// RequiredColumns are the header columns the input file must contain.
// Matching is case-insensitive and ignores surrounding whitespace; extra
// columns are ignored.
var RequiredColumns = []string{
	"Institution",
	"City",
	"State/Province",
	"Country",
	"Team Number",
	"Advisor",
	"Problem",
	"Ranking",
}

// RawRecord is one input row. Fields are raw strings exactly as read;
// cleanup happens later in the normalize package.
type RawRecord struct {
	Institution   string
	City          string
	StateProvince string
	Country       string
	TeamNumber    string
	Advisor       string
	Problem       string
	Ranking       string
}

// MissingColumnsError reports every required column absent from the header,
// so the operator can fix the file in one pass.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ReadRecords opens path, validates the header, and decodes every row into a
// RawRecord, preserving input order. It returns a *MissingColumnsError when
// required columns are absent; no rows are read in that case.
func ReadRecords(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening input file %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.Errorf("input file %s is empty", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading header of %s", path)
	}

	index, missing := indexHeader(header)
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	var records []RawRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		records = append(records, RawRecord{
			Institution:   field(row, index["institution"]),
			City:          field(row, index["city"]),
			StateProvince: field(row, index["state/province"]),
			Country:       field(row, index["country"]),
			TeamNumber:    field(row, index["team number"]),
			Advisor:       field(row, index["advisor"]),
			Problem:       field(row, index["problem"]),
			Ranking:       field(row, index["ranking"]),
		})
	}
	return records, nil
}

// indexHeader maps normalized column names to positions and collects any
// required columns that are absent. Missing names are reported in the
// canonical RequiredColumns order.
func indexHeader(header []string) (map[string]int, []string) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[strings.ToLower(col)]; !ok {
			missing = append(missing, col)
		}
	}
	return index, missing
}

// field returns row[i], or empty when the row is shorter than the header
// position (encoding/csv normally rejects ragged rows, but a trailing
// truncated row should not panic).
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
