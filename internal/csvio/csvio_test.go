package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validHeader = "Institution,City,State/Province,Country,Team Number,Advisor,Problem,Ranking\n"

func TestReadRecords_ValidFile(t *testing.T) {
	path := writeTempCSV(t, validHeader+
		"MIT,Cambridge,MA,USA,101,Dr. Smith,A,Winner\n"+
		"Stanford Univ,Stanford,CA,USA,102,Dr. Jones,B,Finalist\n")

	records, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "MIT", records[0].Institution)
	assert.Equal(t, "Cambridge", records[0].City)
	assert.Equal(t, "MA", records[0].StateProvince)
	assert.Equal(t, "USA", records[0].Country)
	assert.Equal(t, "101", records[0].TeamNumber)
	assert.Equal(t, "Dr. Smith", records[0].Advisor)
	assert.Equal(t, "A", records[0].Problem)
	assert.Equal(t, "Winner", records[0].Ranking)

	assert.Equal(t, "Stanford Univ", records[1].Institution, "input order preserved")
}

func TestReadRecords_HeaderCaseAndSpacing(t *testing.T) {
	path := writeTempCSV(t, " institution ,CITY,state/province,Country,team number,ADVISOR,Problem,ranking\n"+
		"MIT,Cambridge,MA,USA,101,Dr. Smith,A,Winner\n")

	records, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "MIT", records[0].Institution)
}

func TestReadRecords_ExtraColumnsIgnored(t *testing.T) {
	path := writeTempCSV(t, "Notes,"+validHeader[:len(validHeader)-1]+",Extra\n"+
		"n1,MIT,Cambridge,MA,USA,101,Dr. Smith,A,Winner,x\n")

	records, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "MIT", records[0].Institution)
	assert.Equal(t, "Winner", records[0].Ranking)
}

func TestReadRecords_MissingColumns(t *testing.T) {
	path := writeTempCSV(t, "Institution,City,Country,Team Number\nMIT,Cambridge,USA,101\n")

	_, err := ReadRecords(path)
	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"State/Province", "Advisor", "Problem", "Ranking"}, missingErr.Missing)
	assert.Contains(t, err.Error(), "State/Province")
}

func TestReadRecords_EmptyFieldsPassThrough(t *testing.T) {
	path := writeTempCSV(t, validHeader+",Cambridge,,USA,101,,A,\n")

	records, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Institution)
	assert.Empty(t, records[0].StateProvince)
	assert.Empty(t, records[0].Advisor)
	assert.Empty(t, records[0].Ranking)
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestReadRecords_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")
	_, err := ReadRecords(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestWriteTables_WritesBothFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	institutions := [][]string{
		{"Institution ID", "Institution Name", "City", "State/Province", "Country"},
		{"1", "MIT", "Cambridge", "Massachusetts", "USA"},
	}
	teams := [][]string{
		{"Institution ID", "Team Number", "Advisor", "Problem", "Ranking"},
		{"1", "101", "Dr. Smith", "A", "Winner"},
	}

	n, err := WriteTables(dir, institutions, teams)
	require.NoError(t, err)
	assert.Greater(t, n, int64(0))

	instData, err := os.ReadFile(filepath.Join(dir, InstitutionsFile))
	require.NoError(t, err)
	assert.Contains(t, string(instData), "1,MIT,Cambridge,Massachusetts,USA")

	teamData, err := os.ReadFile(filepath.Join(dir, TeamsFile))
	require.NoError(t, err)
	assert.Contains(t, string(teamData), "1,101,Dr. Smith,A,Winner")

	// No stray temp files.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteTables_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on the teams temp path makes the second stage
	// fail after the first table was already staged.
	require.NoError(t, os.Mkdir(filepath.Join(dir, TeamsFile+".tmp"), 0o755))

	_, err := WriteTables(dir, [][]string{{"h"}}, [][]string{{"h"}})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, InstitutionsFile))
	assert.True(t, os.IsNotExist(statErr), "institutions table must not be published on failure")
	_, statErr = os.Stat(filepath.Join(dir, InstitutionsFile+".tmp"))
	assert.True(t, os.IsNotExist(statErr), "institutions temp file must be cleaned up")
	_, statErr = os.Stat(filepath.Join(dir, TeamsFile))
	assert.True(t, os.IsNotExist(statErr))
}
