package sheet

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUnknownSheet   = errors.New("unknown sheet")
	ErrUnknownSection = errors.New("unknown section")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUnknownSheet   ErrorKind = "unknown_sheet"
	KindUnknownSection ErrorKind = "unknown_section"
	KindExecution      ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Name string // Optional: sheet or section name
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Name != "" {
		base += fmt.Sprintf(" (name=%s)", e.Name)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without string matching.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
