// Package engine executes a resolved rename plan.
//
// Execution is sequential and continues past failures: one operation
// failing never aborts the rest of the batch. Only the aggregated Result
// decides the process exit status.
package engine

import (
	"errors"
	"io/fs"

	"github.com/oxalica/rawmv/internal/fsops"
	"github.com/oxalica/rawmv/internal/planner"
)

// Reporter receives diagnostics during a run and answers overwrite
// prompts. The CLI wires it to stderr and stdin; tests script it.
type Reporter interface {
	// Renamed is called after each successful rename when verbose output
	// is requested.
	Renamed(op planner.Operation)

	// RenameFailed is called once per failed operation with the
	// underlying OS error.
	RenameFailed(op planner.Operation, err error)

	// AskOverwrite asks whether an existing destination may be
	// overwritten. It blocks until an answer is available.
	AskOverwrite(op planner.Operation) bool
}

// Engine executes rename plans.
type Engine struct {
	fs       fsops.FS
	reporter Reporter
}

// New creates an Engine over the given filesystem and reporter.
func New(fs fsops.FS, reporter Reporter) *Engine {
	return &Engine{
		fs:       fs,
		reporter: reporter,
	}
}

// Run executes every operation in plan order and returns the aggregated
// result.
func (e *Engine) Run(plan *planner.Plan, opts planner.Options) *Result {
	res := &Result{}
	for _, op := range plan.Operations {
		res.Outcomes = append(res.Outcomes, e.runOne(op, opts))
	}
	return res
}

// runOne attempts a single rename, applying the conflict policy when the
// destination already exists.
func (e *Engine) runOne(op planner.Operation, opts planner.Options) OperationResult {
	err := e.fs.Rename(op.Source, op.Dest, opts.Force)
	if err != nil && !opts.Force && errors.Is(err, fs.ErrExist) {
		switch {
		case opts.NoClobber:
			return OperationResult{Op: op, Status: StatusSkippedClobber}
		case opts.Interactive:
			if !e.reporter.AskOverwrite(op) {
				return OperationResult{Op: op, Status: StatusDeclined}
			}
			err = e.fs.Rename(op.Source, op.Dest, true)
		}
		// Without either flag the exists error stands: rawmv refuses to
		// overwrite unless told to, unlike mv(1).
	}

	if err != nil {
		e.reporter.RenameFailed(op, err)
		return OperationResult{Op: op, Status: StatusFailed, Err: err}
	}
	if opts.Verbose {
		e.reporter.Renamed(op)
	}
	return OperationResult{Op: op, Status: StatusRenamed}
}
