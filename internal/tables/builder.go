// Package tables joins resolved records with their clusters and produces the
// two output relations: one institution row per cluster and one team row per
// retained record.
package tables

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/datamunge/teamsplit/internal/csvio"
	"github.com/datamunge/teamsplit/internal/grouper"
)

// Output table headers, written as the first CSV row.
var (
	InstitutionsHeader = []string{"Institution ID", "Institution Name", "City", "State/Province", "Country"}
	TeamsHeader        = []string{"Institution ID", "Team Number", "Advisor", "Problem", "Ranking"}
)

// InstitutionRow is one output institution: the cluster identifier, its
// canonical name, and location fields from the first record that created it.
type InstitutionRow struct {
	ID            int
	Name          string
	City          string
	StateProvince string
	Country       string
}

// TeamRow is one output team, referencing its institution by identifier.
type TeamRow struct {
	InstitutionID int
	TeamNumber    string
	Advisor       string
	Problem       string
	Ranking       string
}

// Tables holds both finalized output relations.
type Tables struct {
	Institutions []InstitutionRow
	Teams        []TeamRow
}

// Build joins each record to its resolved cluster and partitions the result
// into the two relations. records and assignments are parallel slices: the
// records retained after validation and the cluster ID each resolved to.
// clusters is the finalized grouper state in creation order.
//
// Institutions come out in cluster ID order; location fields are captured
// from the first record assigned to each cluster. Teams come out in input
// order. Referential closure holds by construction; an assignment pointing
// at an unknown cluster ID is a programming error and returns an error.
func Build(records []csvio.RawRecord, assignments []int, clusters []*grouper.Cluster) (*Tables, error) {
	if len(records) != len(assignments) {
		return nil, errors.Errorf("records and assignments length mismatch: %d vs %d", len(records), len(assignments))
	}

	out := &Tables{
		Institutions: make([]InstitutionRow, len(clusters)),
		Teams:        make([]TeamRow, 0, len(records)),
	}

	for i, c := range clusters {
		if c.ID != i+1 {
			return nil, errors.Errorf("cluster list not in ID order: cluster %d at position %d", c.ID, i)
		}
		out.Institutions[i] = InstitutionRow{ID: c.ID, Name: c.CanonicalName}
	}

	located := make([]bool, len(clusters))
	for i, rec := range records {
		id := assignments[i]
		if id < 1 || id > len(clusters) {
			return nil, errors.Errorf("record %d assigned to unknown cluster %d", i, id)
		}

		if !located[id-1] {
			inst := &out.Institutions[id-1]
			inst.City = rec.City
			inst.StateProvince = rec.StateProvince
			inst.Country = rec.Country
			located[id-1] = true
		}

		out.Teams = append(out.Teams, TeamRow{
			InstitutionID: id,
			TeamNumber:    rec.TeamNumber,
			Advisor:       rec.Advisor,
			Problem:       rec.Problem,
			Ranking:       rec.Ranking,
		})
	}

	return out, nil
}

// InstitutionRows renders the institutions relation as CSV rows, header first.
func (t *Tables) InstitutionRows() [][]string {
	rows := make([][]string, 0, len(t.Institutions)+1)
	rows = append(rows, InstitutionsHeader)
	for _, r := range t.Institutions {
		rows = append(rows, []string{strconv.Itoa(r.ID), r.Name, r.City, r.StateProvince, r.Country})
	}
	return rows
}

// TeamRows renders the teams relation as CSV rows, header first.
func (t *Tables) TeamRows() [][]string {
	rows := make([][]string, 0, len(t.Teams)+1)
	rows = append(rows, TeamsHeader)
	for _, r := range t.Teams {
		rows = append(rows, []string{strconv.Itoa(r.InstitutionID), r.TeamNumber, r.Advisor, r.Problem, r.Ranking})
	}
	return rows
}
