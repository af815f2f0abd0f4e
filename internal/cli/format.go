package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/oxalica/rawmv/internal/planner"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	promptColor = color.New(color.FgYellow)
	dimColor    = color.New(color.FgHiBlack)
)

// stderrReporter implements engine.Reporter on the process stderr, with
// confirmation answers read line-wise from stdin.
//
// fatih/color decides whether to emit escape codes by inspecting stdout,
// so colored output is gated on stderr being a terminal explicitly.
type stderrReporter struct {
	out     io.Writer
	in      *bufio.Reader
	colored bool
}

func newStderrReporter() *stderrReporter {
	return &stderrReporter{
		out:     os.Stderr,
		in:      bufio.NewReader(os.Stdin),
		colored: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
}

// Renamed prints a verbose success line.
func (r *stderrReporter) Renamed(op planner.Operation) {
	r.printf(dimColor, "rawmv: Renamed %s -> %s\n", op.Source, op.Dest)
}

// RenameFailed prints a per-operation failure line.
func (r *stderrReporter) RenameFailed(op planner.Operation, err error) {
	r.printf(errorColor, "rawmv: Cannot rename %s -> %s: %v\n", op.Source, op.Dest, err)
}

// AskOverwrite prompts on stderr and blocks for one line of stdin.
// Exactly "y" after trimming means yes; any other answer, including an
// empty line or EOF, means no.
func (r *stderrReporter) AskOverwrite(op planner.Operation) bool {
	r.printf(promptColor, "rawmv: Overwrite %s -> %s ? [y/N] ", op.Source, op.Dest)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.TrimSpace(line) == "y"
}

func (r *stderrReporter) printf(clr *color.Color, format string, args ...any) {
	if r.colored {
		_, _ = clr.Fprintf(r.out, format, args...)
		return
	}
	fmt.Fprintf(r.out, format, args...)
}
