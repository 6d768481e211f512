package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamunge/teamsplit/internal/csvio"
	"github.com/datamunge/teamsplit/internal/grouper"
)

func rec(inst, city, state, country, team string) csvio.RawRecord {
	return csvio.RawRecord{
		Institution:   inst,
		City:          city,
		StateProvince: state,
		Country:       country,
		TeamNumber:    team,
		Advisor:       "Advisor",
		Problem:       "A",
		Ranking:       "Participant",
	}
}

func TestBuild_JoinsRecordsToClusters(t *testing.T) {
	records := []csvio.RawRecord{
		rec("MIT", "Cambridge", "Massachusetts", "USA", "101"),
		rec("M.I.T.", "Cambridge", "Massachusetts", "USA", "102"),
		rec("Stanford University", "Stanford", "California", "USA", "103"),
	}
	assignments := []int{1, 1, 2}
	clusters := []*grouper.Cluster{
		{ID: 1, CanonicalName: "MIT", Members: []string{"MIT", "M.I.T."}},
		{ID: 2, CanonicalName: "Stanford University", Members: []string{"Stanford University"}},
	}

	out, err := Build(records, assignments, clusters)
	require.NoError(t, err)

	require.Len(t, out.Institutions, 2)
	assert.Equal(t, InstitutionRow{
		ID: 1, Name: "MIT", City: "Cambridge", StateProvince: "Massachusetts", Country: "USA",
	}, out.Institutions[0])
	assert.Equal(t, InstitutionRow{
		ID: 2, Name: "Stanford University", City: "Stanford", StateProvince: "California", Country: "USA",
	}, out.Institutions[1])

	require.Len(t, out.Teams, 3)
	assert.Equal(t, []int{1, 1, 2}, []int{
		out.Teams[0].InstitutionID, out.Teams[1].InstitutionID, out.Teams[2].InstitutionID,
	})
	assert.Equal(t, "101", out.Teams[0].TeamNumber, "teams stay in input order")
}

func TestBuild_LocationFromFirstRecordOfCluster(t *testing.T) {
	// The second member of cluster 1 has different location fields; the
	// first record's values must win.
	records := []csvio.RawRecord{
		rec("MIT", "Cambridge", "Massachusetts", "USA", "101"),
		rec("M.I.T.", "Boston", "Unknown", "US", "102"),
	}
	out, err := Build(records, []int{1, 1}, []*grouper.Cluster{
		{ID: 1, CanonicalName: "MIT"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cambridge", out.Institutions[0].City)
	assert.Equal(t, "Massachusetts", out.Institutions[0].StateProvince)
	assert.Equal(t, "USA", out.Institutions[0].Country)
}

func TestBuild_ReferentialClosure(t *testing.T) {
	records := []csvio.RawRecord{
		rec("A", "", "", "", "1"),
		rec("B", "", "", "", "2"),
		rec("A2", "", "", "", "3"),
		rec("C", "", "", "", "4"),
	}
	clusters := []*grouper.Cluster{
		{ID: 1, CanonicalName: "A"},
		{ID: 2, CanonicalName: "B"},
		{ID: 3, CanonicalName: "C"},
	}
	out, err := Build(records, []int{1, 2, 1, 3}, clusters)
	require.NoError(t, err)

	seen := make(map[int]int)
	for _, inst := range out.Institutions {
		seen[inst.ID]++
	}
	for _, team := range out.Teams {
		assert.Equal(t, 1, seen[team.InstitutionID],
			"every team must reference exactly one institution row")
	}
}

func TestBuild_Errors(t *testing.T) {
	records := []csvio.RawRecord{rec("A", "", "", "", "1")}
	clusters := []*grouper.Cluster{{ID: 1, CanonicalName: "A"}}

	_, err := Build(records, []int{1, 2}, clusters)
	assert.Error(t, err, "length mismatch")

	_, err = Build(records, []int{5}, clusters)
	assert.Error(t, err, "unknown cluster id")

	_, err = Build(records, []int{1}, []*grouper.Cluster{{ID: 7, CanonicalName: "A"}})
	assert.Error(t, err, "cluster list out of ID order")
}

func TestRows_IncludeHeaders(t *testing.T) {
	out, err := Build(
		[]csvio.RawRecord{rec("MIT", "Cambridge", "Massachusetts", "USA", "101")},
		[]int{1},
		[]*grouper.Cluster{{ID: 1, CanonicalName: "MIT"}},
	)
	require.NoError(t, err)

	inst := out.InstitutionRows()
	require.Len(t, inst, 2)
	assert.Equal(t, InstitutionsHeader, inst[0])
	assert.Equal(t, []string{"1", "MIT", "Cambridge", "Massachusetts", "USA"}, inst[1])

	teams := out.TeamRows()
	require.Len(t, teams, 2)
	assert.Equal(t, TeamsHeader, teams[0])
	assert.Equal(t, []string{"1", "101", "Advisor", "A", "Participant"}, teams[1])
}
