package planner

import (
	"path/filepath"

	"github.com/oxalica/rawmv/internal/fsops"
)

// Resolve turns the positional operands into a concrete Plan, or fails
// with a UsageError.
//
// Three mutually exclusive modes apply, in priority order:
//
//  1. --no-target-directory: exactly two operands, paired verbatim.
//  2. --target-directory DIR: every operand moves into DIR under its
//     base name.
//  3. auto-detect: two operands form a direct rename unless the second
//     one is an existing directory, in which case the last operand
//     becomes the target directory for the rest. This is the mv(1)
//     heuristic; the directory probe is a live filesystem query, so it
//     shares mv's check-then-rename race.
func Resolve(fs fsops.FS, opts Options, operands []string) (*Plan, error) {
	if opts.Force && opts.NoClobber {
		return nil, usageErrorf("cannot use '--force' and '--no-clobber' together")
	}
	if opts.TargetDirectory != "" && opts.NoTargetDirectory {
		return nil, usageErrorf("cannot use '--no-target-directory' and '--target-directory' together")
	}

	plan := &Plan{}
	switch {
	case opts.NoTargetDirectory:
		if len(operands) != 2 {
			return nil, usageErrorf("expected exactly 2 operands with '--no-target-directory', got %d", len(operands))
		}
		plan.Operations = append(plan.Operations, Operation{Source: operands[0], Dest: operands[1]})

	case opts.TargetDirectory != "":
		if len(operands) == 0 {
			return nil, usageErrorf("missing file operand")
		}
		if err := plan.moveInto(operands, opts.TargetDirectory); err != nil {
			return nil, err
		}

	default:
		switch {
		case len(operands) == 0:
			return nil, usageErrorf("missing file operand")
		case len(operands) == 1:
			return nil, usageErrorf("missing destination operand")
		case len(operands) == 2 && !fs.IsDir(operands[1]):
			plan.Operations = append(plan.Operations, Operation{Source: operands[0], Dest: operands[1]})
		default:
			last := len(operands) - 1
			if err := plan.moveInto(operands[:last], operands[last]); err != nil {
				return nil, err
			}
		}
	}
	return plan, nil
}

// baseName returns the final component of path. The second return is
// false for paths that have none, such as "/", "." or anything ending
// in "..".
func baseName(path string) (string, bool) {
	// The ".." check must see the uncleaned path: Clean would collapse
	// "a/b/.." into "a", which does have a base name.
	if filepath.Base(path) == ".." {
		return "", false
	}
	base := filepath.Base(filepath.Clean(path))
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", false
	}
	return base, true
}
