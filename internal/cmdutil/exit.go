package cmdutil

import "fmt"

// Exit codes shared by every command.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad arguments or configuration; nothing was processed
	ExitRuntime  = 3 // input, lookup or write failure during processing
	ExitCanceled = 130
)

// ExitError carries a process exit code alongside the error that caused it.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Usage wraps err as a usage/configuration failure.
func Usage(err error) error { return &ExitError{Code: ExitUsage, Err: err} }

// Runtime wraps err as a processing failure.
func Runtime(err error) error { return &ExitError{Code: ExitRuntime, Err: err} }
