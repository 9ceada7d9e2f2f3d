package evaluator

import (
	"context"
	"math"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

// arithmetic adapts a binary float operation to a (number, number) builtin.
func arithmetic(op func(a, b float64) float64) functions.Function {
	return functions.Function{
		functions.Sig(func(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
			return types.Number(op(args[0].Float(), args[1].Float())), nil
		}, types.TagNumber, types.TagNumber),
	}
}

func add(a, b float64) float64      { return a + b }
func subtract(a, b float64) float64 { return a - b }
func multiply(a, b float64) float64 { return a * b }
func divide(a, b float64) float64   { return a / b }

func integerDivide(a, b float64) float64 { return math.Trunc(a / b) }

// modulo keeps the sign of the dividend.
func modulo(a, b float64) float64 { return math.Mod(a, b) }

func fnTruncate(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return types.Number(math.Trunc(args[0].Float())), nil
}
