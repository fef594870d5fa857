package core

import (
	"errors"
	"fmt"
)

// Status is the closed taxonomy of outcomes every fallible vv-dsp
// operation reports, per spec.md §3/§7. Outputs are written only on OK.
type Status int

const (
	// OK indicates success; outputs have been written.
	OK Status = iota
	// NullArgument indicates a required buffer or handle is missing.
	NullArgument
	// InvalidSize indicates a zero size where forbidden, or a size that
	// violates an invariant (hop > nfft, order+1 > n, ...).
	InvalidSize
	// OutOfRange indicates a numeric parameter outside its permitted
	// domain (fc not in (0,1), unrecognized enum value, ...).
	OutOfRange
	// Unsupported indicates a recognized but not-compiled-in feature
	// (Slaney Mel variant, an unlinked backend, ...).
	Unsupported
	// Internal indicates allocation failure or any condition the caller
	// cannot directly fix.
	Internal
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case NullArgument:
		return "NULL_ARGUMENT"
	case InvalidSize:
		return "INVALID_SIZE"
	case OutOfRange:
		return "OUT_OF_RANGE"
	case Unsupported:
		return "UNSUPPORTED"
	case Internal:
		return "INTERNAL"
	default:
		return "UNKNOWN_STATUS"
	}
}

// Error wraps a Status with a component-local message. It composes with
// fmt.Errorf's %w the same way the donor's irformat/dsp packages wrap
// sentinel errors, so callers can errors.Is against a sentinel or
// errors.As to recover the Status.
type Error struct {
	Status Status
	Op     string // component/operation, e.g. "fft.MakePlan"
	Err    error  // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError constructs an *Error for op with the given status and
// optional wrapped cause.
func NewError(op string, status Status, err error) *Error {
	return &Error{Op: op, Status: status, Err: err}
}

// StatusOf returns the Status carried by err if it (or something it
// wraps) is a *Error, else Internal.
func StatusOf(err error) Status {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return Internal
}
