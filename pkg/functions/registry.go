// Package functions defines the JSH function table.
//
// A function is an ordered list of signatures (overloads). A call tries them
// in order and runs the first whose parameters accept the arguments. Each
// parameter is a typecheck descriptor; parameters typed "template" receive
// the unevaluated AST node instead of a value.
//
// # Example
//
//	greet := functions.Function{
//	    functions.Sig(func(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
//	        return types.String("Hello, " + args[0].Text() + "!"), nil
//	    }, "string").Named("name"),
//	}
//	e := evaluator.New(evaluator.WithFunction("greet", greet))
package functions

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/sandrolain/gojsh/pkg/memory"
	"github.com/sandrolain/gojsh/pkg/typecheck"
	"github.com/sandrolain/gojsh/pkg/types"
)

// Caller is the view of the evaluator a function implementation gets.
type Caller interface {
	// Evaluate runs an AST node, typically a template argument. A nil value
	// with a nil error means the node produced nothing.
	Evaluate(ctx context.Context, node *types.ASTNode) (types.Value, error)
	// EvalSource parses and runs JSH source against the same memory.
	EvalSource(ctx context.Context, source string) (types.Value, error)
	// Memory returns the tree the evaluator operates on.
	Memory() *memory.Memory
}

// Impl implements one signature. args holds the positional arguments and
// rest the variadic tail.
type Impl func(ctx context.Context, c Caller, args, rest []Argument) (types.Value, error)

// Signature is one overload of a function.
type Signature struct {
	Params []types.Value
	// Names documents the parameters; it is not used for matching.
	Names []string
	// Rest is the type of the variadic tail, nil when there is none.
	Rest types.Value
	Impl Impl
}

// Sig builds a signature. Each param is anything typecheck.D accepts.
func Sig(impl Impl, params ...any) Signature {
	ps := make([]types.Value, len(params))
	for i, p := range params {
		ps[i] = descriptor(p)
	}
	return Signature{Params: ps, Impl: impl}
}

func descriptor(p any) types.Value {
	switch t := p.(type) {
	case types.Value:
		return t
	case []any:
		return typecheck.D(t...)
	default:
		return typecheck.D(t)
	}
}

// Variadic returns a copy of s accepting any number of trailing arguments
// of the rest type.
func (s Signature) Variadic(rest any) Signature {
	s.Rest = descriptor(rest)
	return s
}

// Named returns a copy of s with parameter names attached.
func (s Signature) Named(names ...string) Signature {
	s.Names = names
	return s
}

// ParamType returns the declared type of argument i.
func (s Signature) ParamType(i int) types.Value {
	if i < len(s.Params) {
		return s.Params[i]
	}
	return s.Rest
}

// IsTemplate reports whether t marks an unevaluated parameter.
func IsTemplate(t types.Value) bool {
	str, ok := t.(types.String)
	return ok && strings.ToLower(strings.TrimSpace(string(str))) == typecheck.Template
}

// CheckArity returns a non-empty reason when n arguments cannot match s.
func (s Signature) CheckArity(n int) string {
	if s.Rest != nil {
		if n < len(s.Params) {
			return fmt.Sprintf("Expected %d+ arguments, received %d", len(s.Params), n)
		}
		return ""
	}
	if n != len(s.Params) {
		return fmt.Sprintf("Expected %d arguments, received %d", len(s.Params), n)
	}
	return ""
}

// Validate checks every descriptor of s.
func (s Signature) Validate() error {
	if s.Impl == nil {
		return types.Errorf(types.ErrInvalidType, "Signature has no implementation")
	}
	for _, p := range s.Params {
		if err := typecheck.Validate(p); err != nil {
			return err
		}
	}
	if s.Rest != nil {
		return typecheck.Validate(s.Rest)
	}
	return nil
}

// Render formats s as it appears in call errors: name, param, ..., ...rest.
func (s Signature) Render(name string) string {
	parts := make([]string, 0, len(s.Params)+1)
	parts = append(parts, name)
	for _, p := range s.Params {
		parts = append(parts, renderType(p))
	}
	out := strings.Join(parts, ", ")
	if s.Rest != nil {
		out += ", ..." + renderType(s.Rest)
	}
	return out
}

func renderType(t types.Value) string {
	if arr, ok := t.(*types.Array); ok {
		parts := make([]string, len(arr.Items))
		for i, item := range arr.Items {
			parts[i] = renderType(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	if s, ok := t.(types.String); ok {
		return string(s)
	}
	return types.Stringify(t)
}

// Function is the ordered overload list of one name.
type Function []Signature

// Validate checks every signature of f.
func (f Function) Validate() error {
	if len(f) == 0 {
		return types.Errorf(types.ErrInvalidType, "Function has no signatures")
	}
	for _, s := range f {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Table maps names to functions.
type Table map[string]Function

// Clone returns a copy of t that can be changed independently. Functions are
// shared; they are never modified in place.
func (t Table) Clone() Table {
	return maps.Clone(t)
}

// Alias makes name refer to the function currently named existing.
func (t Table) Alias(name, existing string) error {
	fn, ok := t[existing]
	if !ok {
		return types.Errorf(types.ErrUnknownFunction, "Function '%s' doesn't exist.", existing)
	}
	t[name] = fn
	return nil
}
