package models

// BackfillReport summarises one orphan book backfill run.
type BackfillReport struct {
	// Owner is the user that received (or would receive) the orphans.
	Owner UserSummary `json:"owner"`

	// Orphans is the number of ownerless books found before the run.
	Orphans int64 `json:"orphans"`

	// Assigned is the number of books changed. Always zero on a dry run.
	Assigned int64 `json:"assigned"`

	DryRun bool `json:"dryRun"`
}
