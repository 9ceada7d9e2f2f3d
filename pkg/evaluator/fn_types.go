package evaluator

import (
	"context"
	"unicode/utf8"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

func fnType(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return types.String(types.TypeOf(args[0].Value)), nil
}

// fnSize counts fields, elements or runes.
func fnSize(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	switch v := args[0].Value.(type) {
	case *types.Object:
		return types.Number(v.Len()), nil
	case *types.Array:
		return types.Number(v.Len()), nil
	case types.String:
		return types.Number(utf8.RuneCountInString(string(v))), nil
	}
	return nil, nil
}

// converter adapts a value converter to a one-argument builtin.
func converter(conv func(types.Value) types.Value) functions.Impl {
	return func(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
		return conv(args[0].Value), nil
	}
}
