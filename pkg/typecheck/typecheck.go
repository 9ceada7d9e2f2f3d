// Package typecheck implements the JSH type descriptor language.
//
// A descriptor is a simple type name:
//
//	any string number boolean null array object integer path template
//
// or an array whose first element names a compound type:
//
//	["array", T]               every element matches T
//	["object", T]              every field value matches T
//	["and", T1, T2, ...]       all descriptors match
//	["or", T1, T2, ...]        at least one descriptor matches
//	["number", sign...]        a number with the allowed signs
//	["integer", sign...]       an integer with the allowed signs
//
// Sign tokens are positive/pos, negative/neg, zero, or any combination of the
// letters p (or +), n (or -) and z in one token.
//
// "template" is only meaningful in function signatures, where it marks an
// argument passed unevaluated. Check rejects it like any unknown name.
package typecheck

import (
	"slices"
	"strings"

	"github.com/sandrolain/gojsh/pkg/path"
	"github.com/sandrolain/gojsh/pkg/types"
)

// Simple type names.
const (
	Any      = "any"
	Integer  = "integer"
	Path     = "path"
	Template = "template"
)

// Compound type names.
const (
	And = "and"
	Or  = "or"
)

var simpleTypes = []string{
	types.TagString, types.TagNumber, types.TagBoolean, types.TagNull, types.TagArray, types.TagObject,
}

func mismatch(format string, args ...any) error {
	return types.Errorf(types.ErrTypeMismatch, format, args...)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Check tests v against desc. On success it returns the accepted value,
// which for "path" is the parsed segment list as an array of strings.
func Check(v types.Value, desc types.Value) (types.Value, error) {
	switch d := desc.(type) {
	case types.String:
		return checkSimple(v, normalize(string(d)))
	case *types.Array:
		return checkCompound(v, d)
	default:
		return nil, types.Errorf(types.ErrInvalidType, "Type must be in a string or array format")
	}
}

func checkSimple(v types.Value, name string) (types.Value, error) {
	valueType := types.TypeOf(v)
	switch {
	case name == Any, name == valueType:
		return v, nil
	case name == Path:
		segs, err := path.Parse(v)
		if err != nil {
			return nil, err
		}
		return path.Value(segs), nil
	case name == Integer:
		n, ok := v.(types.Number)
		if !ok {
			return nil, mismatch("%s is not a number", valueType)
		}
		if !types.IsInteger(float64(n)) {
			return nil, mismatch("Is a number but not an integer")
		}
		return v, nil
	case slices.Contains(simpleTypes, name):
		return nil, mismatch("%s value is not of %s type", valueType, name)
	default:
		return nil, types.Errorf(types.ErrInvalidType, "'%s' is not a valid simple type", name)
	}
}

func checkCompound(v types.Value, desc *types.Array) (types.Value, error) {
	if desc.Len() < 2 {
		return nil, types.Errorf(types.ErrInvalidType, "Complex types must have inner types")
	}
	mainName, ok := desc.Items[0].(types.String)
	if !ok {
		return nil, types.Errorf(types.ErrInvalidType, "%s is not a valid complex type", types.Stringify(desc.Items[0]))
	}
	main := normalize(string(mainName))
	inner := desc.Items[1:]
	valueType := types.TypeOf(v)

	switch main {
	case types.TagArray:
		arr, ok := v.(*types.Array)
		if !ok {
			return nil, mismatch("%s is not an array", valueType)
		}
		for i, item := range arr.Items {
			if _, err := Check(item, inner[0]); err != nil {
				return nil, mismatch("Value %d is not of the type %s", i, types.Stringify(inner[0]))
			}
		}
		return v, nil
	case types.TagObject:
		obj, ok := v.(*types.Object)
		if !ok {
			return nil, mismatch("%s is not an object", valueType)
		}
		for _, k := range obj.Keys() {
			item, _ := obj.Get(k)
			if _, err := Check(item, inner[0]); err != nil {
				return nil, mismatch("Value %s is not of the type %s", k, types.Stringify(inner[0]))
			}
		}
		return v, nil
	case types.TagNumber, Integer:
		n, ok := v.(types.Number)
		if !ok {
			return nil, mismatch("%s is not a number", valueType)
		}
		if main == Integer && !types.IsInteger(float64(n)) {
			return nil, mismatch("Is a number but not an integer")
		}
		if err := parseSigns(inner).check(float64(n)); err != nil {
			return nil, err
		}
		return v, nil
	case And:
		for _, t := range inner {
			if _, err := Check(v, t); err != nil {
				return nil, err
			}
		}
		return v, nil
	case Or:
		names := make([]string, len(inner))
		for i, t := range inner {
			if res, err := Check(v, t); err == nil {
				return res, nil
			}
			names[i] = types.Stringify(t)
		}
		return nil, mismatch("%s is not any of the types %s", valueType, strings.Join(names, ", "))
	default:
		return nil, types.Errorf(types.ErrInvalidType, "%s is not a valid complex type", main)
	}
}
