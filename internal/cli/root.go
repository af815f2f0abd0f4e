// Package cli implements the rawmv command line.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxalica/rawmv/internal/engine"
	"github.com/oxalica/rawmv/internal/fsops"
	"github.com/oxalica/rawmv/internal/planner"
)

// ErrRenameFailed signals that at least one rename failed. The failures
// were already printed per operation, so main only needs to exit
// non-zero without printing anything more.
var ErrRenameFailed = errors.New("rename failed")

var (
	version = "dev"

	opts        planner.Options
	showVersion bool
)

// rootCmd is the whole rawmv command: it has no subcommands, only flags
// and path operands.
var rootCmd = &cobra.Command{
	Use:   "rawmv [flags] SOURCE... DEST",
	Short: "mv(1) but without the cp(1) fallback",
	Long: `rawmv renames files with an atomic rename and nothing else.

Unlike mv(1) it never falls back to copy-and-delete, so a move either
happens atomically within one filesystem or fails. It also refuses to
overwrite an existing destination unless asked to with --force.

Operands after a literal -- are always treated as paths, even when they
look like flags.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "rawmv %s\n", version)
			return nil
		}

		// pflag consumes a "--" right after -t as the flag's value rather
		// than reporting a missing argument; refuse it here.
		if opts.TargetDirectory == "--" {
			return &planner.UsageError{Message: "missing directory argument for '--target-directory'"}
		}

		fs := fsops.NewRealFS()
		plan, err := planner.Resolve(fs, opts, args)
		if err != nil {
			return err
		}

		result := engine.New(fs, newStderrReporter()).Run(plan, opts)
		if result.Failed() {
			return ErrRenameFailed
		}
		return nil
	},
}

// SetVersion overrides the version printed by --version. The build
// injects it through cmd/rawmv.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.Force, "force", "f", false, "overwrite existing destinations without prompting")
	flags.BoolVarP(&opts.NoClobber, "no-clobber", "n", false, "silently skip sources whose destination exists")
	flags.BoolVarP(&opts.Interactive, "interactive", "i", false, "prompt before overwriting an existing destination")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "print every successful rename")
	flags.BoolVarP(&opts.NoTargetDirectory, "no-target-directory", "T", false, "treat the last operand as a plain path, never a directory")
	flags.StringVarP(&opts.TargetDirectory, "target-directory", "t", "", "move every operand into `DIR`")
	flags.BoolVarP(&showVersion, "version", "V", false, "print version information and exit")
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
