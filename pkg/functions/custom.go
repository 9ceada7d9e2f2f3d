package functions

import (
	"context"

	"github.com/sandrolain/gojsh/pkg/types"
)

// CustomFunc is the signature for user-defined functions that only need
// their evaluated arguments, positional and variadic in order.
type CustomFunc func(ctx context.Context, args ...types.Value) (types.Value, error)

// CustomFunctionDef describes a user-defined function with a single
// signature.
type CustomFunctionDef struct {
	// Name is the function name as it appears in calls.
	Name string
	// Params are the parameter descriptors, anything typecheck.D accepts.
	Params []any
	// Rest, when non-nil, makes the function variadic.
	Rest any
	// Fn is the implementation.
	Fn CustomFunc
}

// Function converts d into a one-signature Function.
func (d CustomFunctionDef) Function() Function {
	return Function{Simple(d.Fn, d.Rest, d.Params...)}
}

// Simple adapts fn into a signature. rest may be nil.
func Simple(fn CustomFunc, rest any, params ...any) Signature {
	s := Sig(func(ctx context.Context, _ Caller, args, tail []Argument) (types.Value, error) {
		all := Values(args)
		all = append(all, Values(tail)...)
		return fn(ctx, all...)
	}, params...)
	if rest != nil {
		s = s.Variadic(rest)
	}
	return s
}
