package evaluator

import (
	"context"
	"math"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

func fnSum(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	var sum float64
	for _, item := range args[0].Array().Items {
		sum += float64(item.(types.Number))
	}
	return types.Number(sum), nil
}

// extreme builds minimum and maximum. A NaN element makes the result NaN.
func extreme(pick func(a, b float64) float64) functions.Impl {
	return func(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
		items := args[0].Array().Items
		if len(items) == 0 {
			return nil, types.Errorf(types.ErrEmptyArray, "Empty array given")
		}
		res := float64(items[0].(types.Number))
		for _, item := range items[1:] {
			res = pick(res, float64(item.(types.Number)))
		}
		return types.Number(res), nil
	}
}

var (
	fnMinimum = extreme(math.Min)
	fnMaximum = extreme(math.Max)
)
