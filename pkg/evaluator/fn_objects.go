package evaluator

import (
	"context"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

// fnMergeDepth merges shared object keys recursively for depth levels.
func fnMergeDepth(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return types.Merge(args[0].Value, args[1].Value, args[2].Int()), nil
}

func fnMerge(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return types.Merge(args[0].Value, args[1].Value, 0), nil
}
