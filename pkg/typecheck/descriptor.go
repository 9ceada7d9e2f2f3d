package typecheck

import (
	"slices"
	"strings"

	"github.com/sandrolain/gojsh/pkg/types"
)

var signatureTypes = []string{Any, Integer, Path, Template}

// D builds a descriptor from Go strings, descriptor values and slices of
// either, so that ["or", "array", "string"] reads as D(Or, "array", "string").
// A single string argument yields a simple descriptor.
func D(parts ...any) types.Value {
	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			return types.String(s)
		}
	}
	items := make([]types.Value, len(parts))
	for i, p := range parts {
		switch t := p.(type) {
		case string:
			items[i] = types.String(t)
		case types.Value:
			items[i] = t
		case []any:
			items[i] = D(t...)
		default:
			items[i] = types.Null{}
		}
	}
	return types.NewArray(items...)
}

// MustParse reads a descriptor written as a bare name or as JSON array text.
// It panics on malformed input and is meant for literals.
func MustParse(text string) types.Value {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "[") {
		return types.MustUnmarshal(text)
	}
	return types.String(text)
}

// Validate reports whether desc is a well-formed descriptor. "template" is
// accepted only at the top level, where function signatures use it.
func Validate(desc types.Value) error {
	if s, ok := desc.(types.String); ok && normalize(string(s)) == Template {
		return nil
	}
	return validate(desc)
}

func validate(desc types.Value) error {
	switch d := desc.(type) {
	case types.String:
		name := normalize(string(d))
		if name == Template {
			return types.Errorf(types.ErrInvalidType, "'%s' is only valid as a parameter type", name)
		}
		if !slices.Contains(simpleTypes, name) && !slices.Contains(signatureTypes, name) {
			return types.Errorf(types.ErrInvalidType, "'%s' is not a valid simple type", name)
		}
		return nil
	case *types.Array:
		if d.Len() < 2 {
			return types.Errorf(types.ErrInvalidType, "Complex types must have inner types")
		}
		mainName, ok := d.Items[0].(types.String)
		if !ok {
			return types.Errorf(types.ErrInvalidType, "%s is not a valid complex type", types.Stringify(d.Items[0]))
		}
		switch main := normalize(string(mainName)); main {
		case types.TagArray, types.TagObject:
			return validate(d.Items[1])
		case And, Or:
			for _, t := range d.Items[1:] {
				if err := validate(t); err != nil {
					return err
				}
			}
			return nil
		case types.TagNumber, Integer:
			for _, t := range d.Items[1:] {
				if _, ok := t.(types.String); !ok {
					return types.Errorf(types.ErrInvalidType, "Sign %s is not a string", types.Stringify(t))
				}
			}
			return nil
		default:
			return types.Errorf(types.ErrInvalidType, "%s is not a valid complex type", main)
		}
	default:
		return types.Errorf(types.ErrInvalidType, "Type must be in a string or array format")
	}
}
