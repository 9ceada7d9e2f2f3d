// Package extobject provides object functions beyond the JSH builtins.
// Register them with evaluator.WithCustomFunctions or ext.WithObject.
package extobject

import (
	"context"
	"slices"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

// All returns all extended object function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		Keys(),
		Values(),
		Has(),
		Pick(),
		Omit(),
	}
}

func object(v types.Value) *types.Object {
	if o, ok := v.(*types.Object); ok {
		return o
	}
	return types.NewObject()
}

func names(v types.Value) []string {
	a, ok := v.(*types.Array)
	if !ok {
		return nil
	}
	out := make([]string, len(a.Items))
	for i, item := range a.Items {
		out[i] = types.Stringify(item)
	}
	return out
}

// Keys returns the definition for (keys object), in insertion order.
func Keys() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "keys",
		Params: []any{"object"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			keys := object(args[0]).Keys()
			out := make([]types.Value, len(keys))
			for i, k := range keys {
				out[i] = types.String(k)
			}
			return types.NewArray(out...), nil
		},
	}
}

// Values returns the definition for (values object), in insertion order.
func Values() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "values",
		Params: []any{"object"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			o := object(args[0])
			var out []types.Value
			for _, k := range o.Keys() {
				v, _ := o.Get(k)
				out = append(out, v)
			}
			return types.NewArray(out...), nil
		},
	}
}

// Has returns the definition for (has object key).
func Has() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "has",
		Params: []any{"object", "string"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			return types.Bool(object(args[0]).Has(types.Stringify(args[1]))), nil
		},
	}
}

func filter(o *types.Object, keep func(k string) bool) *types.Object {
	out := types.NewObject()
	for _, k := range o.Keys() {
		if keep(k) {
			v, _ := o.Get(k)
			out.Set(k, v)
		}
	}
	return out
}

// Pick returns the definition for (pick object keys), keeping only the
// listed keys.
func Pick() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "pick",
		Params: []any{"object", []any{"array", "string"}},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			keys := names(args[1])
			return filter(object(args[0]), func(k string) bool { return slices.Contains(keys, k) }), nil
		},
	}
}

// Omit returns the definition for (omit object keys), dropping the listed
// keys.
func Omit() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "omit",
		Params: []any{"object", []any{"array", "string"}},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			keys := names(args[1])
			return filter(object(args[0]), func(k string) bool { return !slices.Contains(keys, k) }), nil
		},
	}
}
