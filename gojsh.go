// Package gojsh implements JSH, a small s-expression language over JSON
// whose variables are paths into a mutable document.
//
// # Quick Start
//
//	// One-off evaluation against a document stored under "root"
//	result, err := gojsh.Eval(`(get root.books.book1.name)`, doc)
//
//	// Long-lived evaluator keeping its memory between calls
//	e := gojsh.New(evaluator.WithCaching(true))
//	_ = e.SetValue(types.String("root"), doc)
//	_, err = e.EvalJSH(ctx, `(set root.count (+ @root.count 1))`)
//
// # Language
//
//	(name arg ...)   call; the first element evaluates to the function name
//	[a, b]           list
//	{k: v}           object
//	@a.b.0           variable lookup in memory
//	"text" 1 true    literals; bare words are strings
//	# comment        to the end of the line
//
// # More Information
//
//   - Parser: github.com/sandrolain/gojsh/pkg/parser
//   - Evaluator: github.com/sandrolain/gojsh/pkg/evaluator
//   - Functions: github.com/sandrolain/gojsh/pkg/functions
//   - Types: github.com/sandrolain/gojsh/pkg/types
//   - HTTP shell: github.com/sandrolain/gojsh/pkg/server
package gojsh

import (
	"context"
	"fmt"
	"time"

	"github.com/sandrolain/gojsh/pkg/evaluator"
	"github.com/sandrolain/gojsh/pkg/parser"
	"github.com/sandrolain/gojsh/pkg/types"
)

// RootKey is the memory key Eval stores its document under.
const RootKey = "root"

// Version returns the current version of gojsh.
func Version() string {
	return "v0.1.0-dev"
}

// Compile parses a JSH source for repeated evaluation.
func Compile(source string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Compile(source, opts...)
}

// New creates an evaluator with its own memory.
func New(opts ...evaluator.EvalOption) *evaluator.Evaluator {
	return evaluator.New(opts...)
}

// Eval evaluates source in a fresh evaluator whose memory holds doc under
// RootKey. A nil doc leaves the memory empty. The evaluation is bounded to
// 30 seconds; use EvalWithContext to choose.
func Eval(source string, doc types.Value, opts ...evaluator.EvalOption) (types.Value, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return EvalWithContext(ctx, source, doc, opts...)
}

// EvalWithContext is Eval with a caller-provided context.
func EvalWithContext(ctx context.Context, source string, doc types.Value, opts ...evaluator.EvalOption) (types.Value, error) {
	expr, err := Compile(source)
	if err != nil {
		return nil, err
	}
	e := evaluator.New(opts...)
	if doc != nil {
		if err := e.SetValue(types.String(RootKey), doc); err != nil {
			return nil, err
		}
	}
	return e.Eval(ctx, expr)
}

// MustCompile is like Compile but panics if the source cannot be parsed.
func MustCompile(source string) *types.Expression {
	expr, err := Compile(source)
	if err != nil {
		panic(fmt.Sprintf("gojsh: Compile(%q): %v", source, err))
	}
	return expr
}
