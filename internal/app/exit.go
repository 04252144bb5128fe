package app

import (
	"errors"

	"github.com/reoring/c3tconv"
	"github.com/reoring/c3tconv/internal/config"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitInput     = 1 // input file missing or unreadable
	ExitMalformed = 2 // malformed input or schema violation
	ExitVersion   = 3
	ExitWrite     = 4
	ExitUsage     = 5 // missing input/output path, bad flags or config
)

// ExitError attaches an exit code to an error raised outside the core.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ErrMissingPath reports a run without the required input or output path.
var ErrMissingPath = errors.New("missing input or output path")

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	if config.Code(err) != "" {
		return ExitUsage
	}
	switch c3tconv.KindOf(err) {
	case c3tconv.KindMalformedInput, c3tconv.KindSchemaViolation:
		return ExitMalformed
	case c3tconv.KindUnsupportedVersion:
		return ExitVersion
	case c3tconv.KindWriteFailure:
		return ExitWrite
	}
	return ExitInput
}
