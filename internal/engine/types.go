package engine

import "github.com/oxalica/rawmv/internal/planner"

// Status classifies the outcome of a single rename operation.
type Status string

const (
	// StatusRenamed means the rename succeeded.
	StatusRenamed Status = "renamed"

	// StatusSkippedClobber means the destination existed and --no-clobber
	// skipped the operation.
	StatusSkippedClobber Status = "skipped-no-clobber"

	// StatusDeclined means the user answered the overwrite prompt with
	// anything but "y".
	StatusDeclined Status = "declined"

	// StatusFailed means the rename failed with an OS error.
	StatusFailed Status = "failed"
)

// OperationResult pairs an operation with its outcome.
type OperationResult struct {
	// Op is the operation that was attempted.
	Op planner.Operation

	// Status classifies what happened.
	Status Status

	// Err is the underlying error, set only when Status is StatusFailed.
	Err error
}

// Result aggregates the per-operation outcomes of a run.
type Result struct {
	// Outcomes holds one entry per operation, in execution order.
	Outcomes []OperationResult
}

// Failed reports whether any operation failed. Skipped and declined
// operations do not count as failures.
func (r *Result) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			return true
		}
	}
	return false
}
