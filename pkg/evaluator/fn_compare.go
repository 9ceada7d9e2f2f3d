package evaluator

import (
	"cmp"
	"context"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

func fnEquals(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return types.Bool(types.Equal(args[0].Value, args[1].Value)), nil
}

func fnNotEquals(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return types.Bool(!types.Equal(args[0].Value, args[1].Value)), nil
}

// ordering builds a comparison valid between two numbers or two strings.
// test receives the result of cmp.Compare; NaN never satisfies it.
func ordering(test func(c int) bool) functions.Function {
	return functions.Function{
		functions.Sig(func(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
			a, b := args[0].Float(), args[1].Float()
			if a != a || b != b {
				return types.Bool(false), nil
			}
			return types.Bool(test(cmp.Compare(a, b))), nil
		}, types.TagNumber, types.TagNumber),
		functions.Sig(func(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
			return types.Bool(test(cmp.Compare(args[0].Text(), args[1].Text()))), nil
		}, types.TagString, types.TagString),
	}
}
