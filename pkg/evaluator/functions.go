package evaluator

import (
	"sync"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/typecheck"
	"github.com/sandrolain/gojsh/pkg/types"
)

var (
	builtinFunctions     functions.Table
	builtinFunctionsOnce sync.Once
)

// aliases maps short names to the builtin they stand for.
var aliases = map[string]string{
	"del":   "delete",
	"+":     "add",
	"sub":   "subtract",
	"-":     "subtract",
	"mul":   "multiply",
	"*":     "multiply",
	"div":   "divide",
	"/":     "divide",
	"idiv":  "integerDivide",
	"//":    "integerDivide",
	"mod":   "modulo",
	"%":     "modulo",
	"trunc": "truncate",
	"str":   "string",
	"bool":  "boolean",
	"num":   "number",
	"int":   "integer",
	"eq":    "equals",
	"==":    "equals",
	"ne":    "notEquals",
	"!=":    "notEquals",
	"gt":    "greater",
	">":     "greater",
	"lt":    "less",
	"<":     "less",
	"gte":   "greaterEqual",
	">=":    "greaterEqual",
	"lte":   "lessEqual",
	"<=":    "lessEqual",
	"min":   "minimum",
	"max":   "maximum",
}

// initBuiltinFunctions initializes the built-in function registry.
func initBuiltinFunctions() {
	builtinFunctionsOnce.Do(func() {
		const (
			anything = typecheck.Any
			path     = typecheck.Path
			template = typecheck.Template
			integer  = typecheck.Integer
			number   = types.TagNumber
			str      = types.TagString
			array    = types.TagArray
		)
		numbers := []any{array, number}
		sliceable := []any{typecheck.Or, array, str}

		builtinFunctions = functions.Table{
			// Memory functions
			"get":    {functions.Sig(fnGet, path).Named("getPath")},
			"set":    {functions.Sig(fnSet, path, anything).Named("setPath", "newValue")},
			"delete": {functions.Sig(fnDelete, path).Named("deletePath")},
			"exists": {functions.Sig(fnExists, path).Named("varPath")},

			// Control functions
			"run":  {functions.Sig(fnRun).Variadic(template).Named("input")},
			"runr": {functions.Sig(fnRunr).Variadic(template).Named("input")},
			"if": {
				functions.Sig(fnIfElse, anything, template, template).Named("check", "then", "else"),
				functions.Sig(fnIf, anything, template).Named("check", "then"),
			},
			"jsh": {functions.Sig(fnJsh, str).Named("source")},

			// Iteration functions
			"map":  iterator(func() folder { return &listFolder{items: []types.Value{}} }),
			"kmap": iterator(func() folder { return &pairFolder{obj: types.NewObject()} }),
			"for":  iterator(func() folder { return &lastFolder{} }),

			// Type functions
			"size":    {functions.Sig(fnSize, []any{typecheck.Or, array, str, types.TagObject}).Named("value")},
			"type":    {functions.Sig(fnType, anything).Named("value")},
			"string":  {functions.Sig(converter(types.ToString), anything)},
			"boolean": {functions.Sig(converter(types.ToBoolean), anything)},
			"number":  {functions.Sig(converter(types.ToNumber), anything)},
			"integer": {functions.Sig(converter(types.ToInteger), anything)},

			// Object functions
			"merge": {
				functions.Sig(fnMergeDepth, anything, anything, []any{integer, "positive", "zero"}).Named("obj1", "obj2", "depth"),
				functions.Sig(fnMerge, anything, anything).Named("obj1", "obj2"),
			},

			// Math functions
			"add":           arithmetic(add),
			"subtract":      arithmetic(subtract),
			"multiply":      arithmetic(multiply),
			"divide":        arithmetic(divide),
			"integerDivide": arithmetic(integerDivide),
			"modulo":        arithmetic(modulo),
			"truncate":      {functions.Sig(fnTruncate, number)},

			// Comparison functions
			"equals":       {functions.Sig(fnEquals, anything, anything)},
			"notEquals":    {functions.Sig(fnNotEquals, anything, anything)},
			"greater":      ordering(func(c int) bool { return c > 0 }),
			"less":         ordering(func(c int) bool { return c < 0 }),
			"greaterEqual": ordering(func(c int) bool { return c >= 0 }),
			"lessEqual":    ordering(func(c int) bool { return c <= 0 }),

			// Array functions
			"join": {
				functions.Sig(fnJoinSep, array, str).Named("array", "separator"),
				functions.Sig(fnJoin, array).Named("array"),
			},
			"slice": {
				functions.Sig(fnSliceRange, sliceable, integer, integer).Named("value", "start", "end"),
				functions.Sig(fnSlice, sliceable, integer).Named("value", "start"),
			},

			// Aggregation functions
			"sum":     {functions.Sig(fnSum, numbers).Named("array")},
			"minimum": {functions.Sig(fnMinimum, numbers).Named("array")},
			"maximum": {functions.Sig(fnMaximum, numbers).Named("array")},
		}

		for alias, name := range aliases {
			builtinFunctions[alias] = builtinFunctions[name]
		}
	})
}

// builtinTable returns the shared builtin table. Callers clone it before
// changing it.
func builtinTable() functions.Table {
	initBuiltinFunctions()
	return builtinFunctions
}

// GetFunction retrieves a built-in function by name.
func GetFunction(name string) (functions.Function, bool) {
	initBuiltinFunctions()
	fn, ok := builtinFunctions[name]
	return fn, ok
}
