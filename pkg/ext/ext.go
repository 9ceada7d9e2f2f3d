// Package ext provides optional functions that are not part of the JSH
// builtin table.
//
// The functions live in sub-packages grouped by category:
//   - extstring: upper, lower, trim, split, contains, startsWith, ...
//   - extarray: first, last, reverse, concat, distinct, flatten, includes
//   - extobject: keys, values, has, pick, omit
//
// # Integration
//
//	e := evaluator.New(ext.WithAll())
//
// or by category:
//
//	e := evaluator.New(ext.WithString(), ext.WithObject())
package ext

import (
	"github.com/sandrolain/gojsh/pkg/evaluator"
	"github.com/sandrolain/gojsh/pkg/ext/extarray"
	"github.com/sandrolain/gojsh/pkg/ext/extobject"
	"github.com/sandrolain/gojsh/pkg/ext/extstring"
	"github.com/sandrolain/gojsh/pkg/functions"
)

// All returns every extension function definition.
func All() []functions.CustomFunctionDef {
	var all []functions.CustomFunctionDef
	all = append(all, extstring.All()...)
	all = append(all, extarray.All()...)
	all = append(all, extobject.All()...)
	return all
}

// Names returns the names of every extension function.
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for i, def := range all {
		out[i] = def.Name
	}
	return out
}

// WithAll returns an EvalOption registering every extension function.
func WithAll() evaluator.EvalOption {
	return evaluator.WithCustomFunctions(All()...)
}

// WithString returns an EvalOption for the string functions.
func WithString() evaluator.EvalOption {
	return evaluator.WithCustomFunctions(extstring.All()...)
}

// WithArray returns an EvalOption for the array functions.
func WithArray() evaluator.EvalOption {
	return evaluator.WithCustomFunctions(extarray.All()...)
}

// WithObject returns an EvalOption for the object functions.
func WithObject() evaluator.EvalOption {
	return evaluator.WithCustomFunctions(extobject.All()...)
}

// Enabled maps a category name to its option. Unknown names yield nil.
func Enabled(category string) evaluator.EvalOption {
	switch category {
	case "all":
		return WithAll()
	case "string":
		return WithString()
	case "array":
		return WithArray()
	case "object":
		return WithObject()
	default:
		return nil
	}
}
