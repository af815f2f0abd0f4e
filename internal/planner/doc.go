// Package planner handles the resolution phase of a rawmv run.
//
// The planner turns the raw positional operands and the flag set into a
// deterministic, fully materialized rename plan. Resolution is pure apart
// from read-only directory probes: no rename executes until the whole
// operand list has resolved, so a resolution failure never leaves a batch
// half done.
package planner
