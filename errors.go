package fractals

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidParameter         = errors.New("invalid parameter")
	ErrRecursionLimit           = errors.New("recursion limit exceeded")
	ErrUnsupportedProjectFormat = errors.New("unsupported project format")
	ErrResolutionOutOfRange     = errors.New("resolution out of range")
)

// Kind is a coarse-grained categorization for errors.
type Kind string

const (
	KindInvalidParameter         Kind = "invalid_parameter"
	KindRecursionLimit           Kind = "recursion_limit_exceeded"
	KindUnsupportedProjectFormat Kind = "unsupported_project_format"
	KindResolutionOutOfRange     Kind = "resolution_out_of_range"
)

var kindSentinels = map[Kind]error{
	KindInvalidParameter:         ErrInvalidParameter,
	KindRecursionLimit:           ErrRecursionLimit,
	KindUnsupportedProjectFormat: ErrUnsupportedProjectFormat,
	KindResolutionOutOfRange:     ErrResolutionOutOfRange,
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind Kind
	Path string // Optional: relevant file path
	Err  error
}

// Errorf builds an *OpError whose message is formatted like fmt.Errorf.
func Errorf(op string, kind Kind, format string, args ...interface{}) error {
	return &OpError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
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

// Is lets errors.Is match an *OpError against the sentinel of its kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	return kindSentinels[e.Kind] == target
}

// IsKind helps callers classify errors without inspecting messages.
func IsKind(err error, kind Kind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
