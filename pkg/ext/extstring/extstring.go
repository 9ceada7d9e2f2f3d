// Package extstring provides string functions beyond the JSH builtins.
// Register them with evaluator.WithCustomFunctions or ext.WithString.
package extstring

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

// All returns all extended string function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		Upper(),
		Lower(),
		Trim(),
		Split(),
		Contains(),
		StartsWith(),
		EndsWith(),
		IndexOf(),
		Replace(),
		Repeat(),
	}
}

func text(v types.Value) string {
	s, _ := v.(types.String)
	return string(s)
}

// Upper returns the definition for (upper string).
func Upper() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "upper",
		Params: []any{"string"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			return types.String(strings.ToUpper(text(args[0]))), nil
		},
	}
}

// Lower returns the definition for (lower string).
func Lower() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "lower",
		Params: []any{"string"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			return types.String(strings.ToLower(text(args[0]))), nil
		},
	}
}

// Trim returns the definition for (trim string).
func Trim() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "trim",
		Params: []any{"string"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			return types.String(strings.TrimSpace(text(args[0]))), nil
		},
	}
}

// Split returns the definition for (split string separator). An empty
// separator splits into runes.
func Split() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "split",
		Params: []any{"string", "string"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			parts := strings.Split(text(args[0]), text(args[1]))
			items := make([]types.Value, len(parts))
			for i, p := range parts {
				items[i] = types.String(p)
			}
			return types.NewArray(items...), nil
		},
	}
}

// Contains returns the definition for (contains string search).
func Contains() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "contains",
		Params: []any{"string", "string"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			return types.Bool(strings.Contains(text(args[0]), text(args[1]))), nil
		},
	}
}

// StartsWith returns the definition for (startsWith string prefix).
func StartsWith() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "startsWith",
		Params: []any{"string", "string"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			return types.Bool(strings.HasPrefix(text(args[0]), text(args[1]))), nil
		},
	}
}

// EndsWith returns the definition for (endsWith string suffix).
func EndsWith() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "endsWith",
		Params: []any{"string", "string"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			return types.Bool(strings.HasSuffix(text(args[0]), text(args[1]))), nil
		},
	}
}

// IndexOf returns the definition for (indexOf string search). The result
// counts runes; -1 means not found.
func IndexOf() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "indexOf",
		Params: []any{"string", "string"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			s := text(args[0])
			i := strings.Index(s, text(args[1]))
			if i < 0 {
				return types.Number(-1), nil
			}
			return types.Number(utf8.RuneCountInString(s[:i])), nil
		},
	}
}

// Replace returns the definition for (replace string old new), replacing
// every occurrence.
func Replace() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "replace",
		Params: []any{"string", "string", "string"},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			return types.String(strings.ReplaceAll(text(args[0]), text(args[1]), text(args[2]))), nil
		},
	}
}

// Repeat returns the definition for (repeat string count).
func Repeat() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:   "repeat",
		Params: []any{"string", []any{"integer", "positive", "zero"}},
		Fn: func(_ context.Context, args ...types.Value) (types.Value, error) {
			n, _ := args[1].(types.Number)
			return types.String(strings.Repeat(text(args[0]), int(n))), nil
		},
	}
}
