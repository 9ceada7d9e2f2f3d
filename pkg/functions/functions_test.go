package functions_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/typecheck"
	"github.com/sandrolain/gojsh/pkg/types"
)

func nop(context.Context, functions.Caller, []functions.Argument, []functions.Argument) (types.Value, error) {
	return nil, nil
}

func TestRender(t *testing.T) {
	tests := []struct {
		sig  functions.Signature
		want string
	}{
		{functions.Sig(nop, "path"), "get, path"},
		{functions.Sig(nop), "get"},
		{functions.Sig(nop).Variadic("template"), "get, ...template"},
		{functions.Sig(nop, []any{typecheck.Or, "array", "object", "string"}, "path", "path", "template"),
			"get, [or, array, object, string], path, path, template"},
		{functions.Sig(nop, "any", "any", []any{"integer", "positive", "zero"}), "get, any, any, [integer, positive, zero]"},
		{functions.Sig(nop, []any{"array", []any{"or", "number", "string"}}), "get, [array, [or, number, string]]"},
		{functions.Sig(nop, "number").Variadic([]any{"array", "number"}), "get, number, ...[array, number]"},
	}

	for _, tt := range tests {
		if got := tt.sig.Render("get"); got != tt.want {
			t.Errorf("Render() = %q, want %q", got, tt.want)
		}
	}
}

func TestCheckArity(t *testing.T) {
	fixed := functions.Sig(nop, "any", "any")
	if r := fixed.CheckArity(2); r != "" {
		t.Errorf("unexpected reason %q", r)
	}
	if r := fixed.CheckArity(3); r != "Expected 2 arguments, received 3" {
		t.Errorf("reason = %q", r)
	}

	variadic := functions.Sig(nop, "any").Variadic("any")
	for _, n := range []int{1, 2, 10} {
		if r := variadic.CheckArity(n); r != "" {
			t.Errorf("CheckArity(%d) = %q", n, r)
		}
	}
	if r := variadic.CheckArity(0); r != "Expected 1+ arguments, received 0" {
		t.Errorf("reason = %q", r)
	}
}

func TestParamType(t *testing.T) {
	s := functions.Sig(nop, "string").Variadic("template")
	if s.ParamType(0) != types.String("string") {
		t.Errorf("ParamType(0) = %v", s.ParamType(0))
	}
	if !functions.IsTemplate(s.ParamType(3)) {
		t.Errorf("ParamType(3) = %v", s.ParamType(3))
	}
	if functions.IsTemplate(types.String("any")) {
		t.Error("any is not a template")
	}
}

func TestValidate(t *testing.T) {
	ok := functions.Function{functions.Sig(nop, "path", "template").Variadic([]any{"or", "string", "number"})}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	bad := []functions.Function{
		{},
		{functions.Sig(nop, "nothing")},
		{functions.Sig(nil, "any")},
		{functions.Sig(nop).Variadic([]any{"array", "nope"})},
	}
	for i, f := range bad {
		if err := f.Validate(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestTable(t *testing.T) {
	table := functions.Table{"add": functions.Function{functions.Sig(nop, "number", "number")}}
	clone := table.Clone()
	if err := clone.Alias("+", "add"); err != nil {
		t.Fatalf("Alias: %v", err)
	}
	if _, ok := table["+"]; ok {
		t.Error("alias leaked into the original table")
	}
	if len(clone["+"]) != 1 {
		t.Error("alias should share the overloads")
	}

	err := clone.Alias("x", "missing")
	if err == nil || types.Message(err) != "Function 'missing' doesn't exist." {
		t.Errorf("unexpected error %v", err)
	}
}

func TestArgument(t *testing.T) {
	a := functions.Argument{Value: types.Number(3.7)}
	if a.Float() != 3.7 || a.Int() != 3 {
		t.Errorf("Float/Int = %v/%v", a.Float(), a.Int())
	}
	if a.Text() != "" || a.Array() != nil || a.Object() != nil {
		t.Error("mismatched accessors should return zero values")
	}

	p := functions.Argument{Value: types.MustUnmarshal(`["a","0"]`)}
	if diff := cmp.Diff([]string{"a", "0"}, p.Path()); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomFunctionDef(t *testing.T) {
	def := functions.CustomFunctionDef{
		Name:   "concat",
		Params: []any{"string"},
		Rest:   "string",
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			out := ""
			for _, a := range args {
				out += string(a.(types.String))
			}
			return types.String(out), nil
		},
	}
	fn := def.Function()
	if err := fn.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := fn[0].Render(def.Name); got != "concat, string, ...string" {
		t.Errorf("Render() = %q", got)
	}

	args := []functions.Argument{{Value: types.String("a")}}
	rest := []functions.Argument{{Value: types.String("b")}, {Value: types.String("c")}}
	got, err := fn[0].Impl(context.Background(), nil, args, rest)
	if err != nil {
		t.Fatalf("Impl: %v", err)
	}
	if got != types.String("abc") {
		t.Errorf("got %v", got)
	}
}
