package planner

import "fmt"

// UsageError reports an invalid flag combination or operand list. It is
// always fatal to the whole run: when resolution fails no operation has
// been attempted.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}
