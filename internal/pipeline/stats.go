package pipeline

// RunStats tracks aggregate counters for one split run.
type RunStats struct {
	Total        int   // Records read from the input file.
	Retained     int   // Records that made it into the outputs.
	SkippedEmpty int   // Records dropped for a blank institution name.
	Institutions int   // Distinct clusters (institution rows).
	Teams        int   // Team rows written.
	OutputBytes  int64 // Total bytes across both output files (0 on dry run).
}

// MergedNames returns how many retained names were absorbed into an existing
// cluster instead of creating one.
func (s *RunStats) MergedNames() int {
	return s.Retained - s.Institutions
}
