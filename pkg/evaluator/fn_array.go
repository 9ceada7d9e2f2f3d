package evaluator

import (
	"context"
	"strings"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

func join(arr *types.Array, sep string) types.Value {
	parts := make([]string, arr.Len())
	for i, item := range arr.Items {
		parts[i] = types.Stringify(item)
	}
	return types.String(strings.Join(parts, sep))
}

func fnJoinSep(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return join(args[0].Array(), args[1].Text()), nil
}

func fnJoin(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return join(args[0].Array(), ""), nil
}

// sliceBounds clamps start and end to [0, n]; negative values count from
// the end.
func sliceBounds(start, end, n int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
		}
		return min(max(i, 0), n)
	}
	start, end = clamp(start), clamp(end)
	if end < start {
		end = start
	}
	return start, end
}

func slice(v types.Value, start, end int, toEnd bool) types.Value {
	switch t := v.(type) {
	case *types.Array:
		if toEnd {
			end = t.Len()
		}
		s, e := sliceBounds(start, end, t.Len())
		items := make([]types.Value, e-s)
		copy(items, t.Items[s:e])
		return types.NewArray(items...)
	case types.String:
		runes := []rune(string(t))
		if toEnd {
			end = len(runes)
		}
		s, e := sliceBounds(start, end, len(runes))
		return types.String(runes[s:e])
	}
	return nil
}

func fnSliceRange(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return slice(args[0].Value, args[1].Int(), args[2].Int(), false), nil
}

func fnSlice(_ context.Context, _ functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return slice(args[0].Value, args[1].Int(), 0, true), nil
}
