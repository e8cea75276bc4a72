package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total     int
	Current   int
	Renamed   int // Moved, or would be moved in a dry run.
	Unchanged int // Already carried their target name.
	Skipped   int // Missing required fields or unusable dates.
	Failed    int // Read or rename errors.
}

// HasErrors reports whether any file was skipped or failed.
func (s *RunStats) HasErrors() bool {
	return s.Skipped > 0 || s.Failed > 0
}
