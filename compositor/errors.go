package compositor

import "fmt"

// CompositionError reports a composition run that spawned but exited
// non-zero, or could not be spawned at all. ExitCode is -1 when no exit
// status is available.
type CompositionError struct {
	Command  string
	Args     []string
	ExitCode int
	Err      error
}

func (e *CompositionError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("failed to run %s: %v", e.Command, e.Err)
}

func (e *CompositionError) Unwrap() error { return e.Err }
