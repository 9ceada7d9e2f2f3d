package types_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sandrolain/gojsh/pkg/types"
)

func TestErrorFormatting(t *testing.T) {
	err := types.NewError(types.ErrScopeMismatch, "Attempting to close 'call' scope with 'list' end char.", 4)
	if got, want := err.Error(), "S0101 at position 4: Attempting to close 'call' scope with 'list' end char."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	err = types.Errorf(types.ErrValueNotFound, "The value %s doesn't exist.", "a.b")
	if got, want := err.Error(), "P0201: The value a.b doesn't exist."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrorKinds(t *testing.T) {
	notFound := fmt.Errorf("wrapped: %w", types.Errorf(types.ErrValueNotFound, "missing"))
	if !types.IsNotFound(notFound) || types.IsBadCall(notFound) {
		t.Error("expected not-found kind")
	}
	badCall := types.Errorf(types.ErrInvalidLevel, "bad level")
	if !types.IsBadCall(badCall) || types.IsNotFound(badCall) {
		t.Error("expected bad-call kind")
	}
	plain := errors.New("io failure")
	if types.IsBadCall(plain) || types.IsNotFound(plain) {
		t.Error("plain errors have no kind")
	}
	if types.Message(notFound) != "missing" {
		t.Errorf("Message() = %q", types.Message(notFound))
	}
	if types.Message(plain) != "io failure" {
		t.Errorf("Message() = %q", types.Message(plain))
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := types.Errorf(types.ErrPathType, "bad").WithCause(cause)
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable")
	}
}
