package planner

import "path/filepath"

// Options is the immutable run configuration, built once by the CLI from
// the parsed command line and passed by value through resolution and
// execution.
type Options struct {
	// Force overwrites existing destinations without prompting.
	Force bool

	// NoClobber silently skips operations whose destination exists.
	NoClobber bool

	// Interactive prompts for confirmation before each overwrite.
	Interactive bool

	// Verbose prints every successful rename.
	Verbose bool

	// NoTargetDirectory treats the destination operand as a plain path,
	// never as a directory to move into.
	NoTargetDirectory bool

	// TargetDirectory, when non-empty, is the directory every operand is
	// moved into.
	TargetDirectory string
}

// Operation is a single rename from Source to Dest.
type Operation struct {
	// Source is the path being renamed.
	Source string

	// Dest is the path it is renamed to.
	Dest string
}

// Plan is the resolved list of renames, in execution order.
type Plan struct {
	// Operations is the ordered list of renames to execute.
	Operations []Operation
}

// moveInto appends one operation per source, moving it into targetDir
// under its base name.
func (p *Plan) moveInto(sources []string, targetDir string) error {
	for _, src := range sources {
		base, ok := baseName(src)
		if !ok {
			return usageErrorf("source has no base name: %s", src)
		}
		p.Operations = append(p.Operations, Operation{
			Source: src,
			Dest:   filepath.Join(targetDir, base),
		})
	}
	return nil
}
