// Package extarray provides array functions beyond the JSH builtins.
// Register them with evaluator.WithCustomFunctions or ext.WithArray.
package extarray

import (
	"context"
	"slices"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

// All returns all extended array function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		First(),
		Last(),
		Reverse(),
		Concat(),
		Distinct(),
		Flatten(),
		Contains(),
	}
}

func items(v types.Value) []types.Value {
	if a, ok := v.(*types.Array); ok {
		return a.Items
	}
	return nil
}

// First returns the definition for (first array). An empty array yields no
// value.
func First() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "first",
		Params: []any{"array"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			if it := items(args[0]); len(it) > 0 {
				return it[0], nil
			}
			return nil, nil
		},
	}
}

// Last returns the definition for (last array).
func Last() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "last",
		Params: []any{"array"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			if it := items(args[0]); len(it) > 0 {
				return it[len(it)-1], nil
			}
			return nil, nil
		},
	}
}

// Reverse returns the definition for (reverse array). The input is not
// modified.
func Reverse() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "reverse",
		Params: []any{"array"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			out := slices.Clone(items(args[0]))
			slices.Reverse(out)
			return types.NewArray(out...), nil
		},
	}
}

// Concat returns the definition for (concat array...).
func Concat() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name: "concat",
		Rest: "array",
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			var out []types.Value
			for _, a := range args {
				out = append(out, items(a)...)
			}
			return types.NewArray(out...), nil
		},
	}
}

// Distinct returns the definition for (distinct array), keeping the first
// of structurally equal elements.
func Distinct() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "distinct",
		Params: []any{"array"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			var out []types.Value
			for _, v := range items(args[0]) {
				if !slices.ContainsFunc(out, func(seen types.Value) bool { return types.Equal(seen, v) }) {
					out = append(out, v)
				}
			}
			return types.NewArray(out...), nil
		},
	}
}

// Flatten returns the definition for (flatten array), removing one level
// of nesting.
func Flatten() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "flatten",
		Params: []any{"array"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			var out []types.Value
			for _, v := range items(args[0]) {
				if inner, ok := v.(*types.Array); ok {
					out = append(out, inner.Items...)
					continue
				}
				out = append(out, v)
			}
			return types.NewArray(out...), nil
		},
	}
}

// Contains returns the definition for (includes array value).
func Contains() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "includes",
		Params: []any{"array", "any"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			return types.Bool(slices.ContainsFunc(items(args[0]), func(v types.Value) bool {
				return types.Equal(v, args[1])
			})), nil
		},
	}
}
