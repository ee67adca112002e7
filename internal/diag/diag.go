// Package diag defines the error taxonomy shared by the build and flash
// layers. Core packages return *Error values; the CLI frontend alone decides
// how they are rendered and which exit code they map to.
package diag

import (
	"errors"
	"fmt"
)

// Kind identifies a known failure category.
type Kind int

const (
	// NotFound: the repo root search exhausted every ancestor directory.
	NotFound Kind = iota + 1
	// ParseError: CMakeLists.txt contained no recognizable project() call.
	ParseError
	// ResolutionError: project() referenced a variable that was never set.
	ResolutionError
	// Ambiguous: more than one candidate artifact and no preferred name matched.
	Ambiguous
	// NoArtifact: the build produced no candidate artifact at all.
	NoArtifact
	// ToolchainMissing: the toolchain settings file does not exist.
	ToolchainMissing
	// ToolMissing: a required external program is not on PATH.
	ToolMissing
	// CommandFailed: an external program ran but exited non-zero.
	CommandFailed
	// Timeout: the debug server port never started accepting connections.
	Timeout
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case ParseError:
		return "parse error"
	case ResolutionError:
		return "resolution error"
	case Ambiguous:
		return "ambiguous"
	case NoArtifact:
		return "no artifact"
	case ToolchainMissing:
		return "toolchain missing"
	case ToolMissing:
		return "tool missing"
	case CommandFailed:
		return "command failed"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error is a known failure with an optional remediation hint.
type Error struct {
	Kind Kind
	Msg  string
	Hint string

	// ExitCode is the wrapped tool's exit status for CommandFailed.
	ExitCode int
}

func (e *Error) Error() string {
	if e.Hint != "" {
		return e.Msg + "\n" + e.Hint
	}
	return e.Msg
}

// New creates an Error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WithHint attaches a remediation hint and returns the error.
func (e *Error) WithHint(format string, args ...interface{}) *Error {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// WithExitCode records the wrapped tool's exit status.
func (e *Error) WithExitCode(code int) *Error {
	e.ExitCode = code
	return e
}

// AsError extracts an *Error from err's chain, if present.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsKind reports whether err is a taxonomy error of the given kind.
func IsKind(err error, kind Kind) bool {
	de, ok := AsError(err)
	return ok && de.Kind == kind
}
