package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("boom")
	err := NewError("fft.MakePlan", Internal, cause)

	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is failed to find wrapped cause")
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("errors.As failed to recover *Error")
	}
	if e.Status != Internal {
		t.Fatalf("Status = %v, want Internal", e.Status)
	}
	if StatusOf(err) != Internal {
		t.Fatalf("StatusOf = %v, want Internal", StatusOf(err))
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if StatusOf(wrapped) != Internal {
		t.Fatalf("StatusOf through fmt.Errorf = %v, want Internal", StatusOf(wrapped))
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		OK:           "OK",
		NullArgument: "NULL_ARGUMENT",
		InvalidSize:  "INVALID_SIZE",
		OutOfRange:   "OUT_OF_RANGE",
		Unsupported:  "UNSUPPORTED",
		Internal:     "INTERNAL",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", s, got, want)
		}
	}
}

func TestNoErrorDefaultsInternal(t *testing.T) {
	if StatusOf(errors.New("plain")) != Internal {
		t.Fatalf("StatusOf(plain error) should default to Internal")
	}
}
