package harness

import "errors"

// ErrKind classifies harness errors so callers can branch on intent rather
// than text. Per-operation mapping failures are not errors at all; they are
// recorded in the result counters.
type ErrKind int

const (
	ErrKindConfig      ErrKind = iota // invalid configuration, caught before any thread spawns
	ErrKindSetup                      // bookkeeping allocation failed before the benchmark started
	ErrKindUnsupported                // platform cannot perform the requested mappings
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a harness Error of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var he *Error
	return errors.As(err, &he) && he.Kind == kind
}
