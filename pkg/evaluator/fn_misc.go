package evaluator

import (
	"context"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

// fnRun evaluates its templates in order for their side effects.
func fnRun(ctx context.Context, c functions.Caller, _, rest []functions.Argument) (types.Value, error) {
	for _, a := range rest {
		if _, err := c.Evaluate(ctx, a.Template); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// fnRunr is fnRun returning the last value produced.
func fnRunr(ctx context.Context, c functions.Caller, _, rest []functions.Argument) (types.Value, error) {
	var last types.Value
	for _, a := range rest {
		v, err := c.Evaluate(ctx, a.Template)
		if err != nil {
			return nil, err
		}
		if v != nil {
			last = v
		}
	}
	return last, nil
}

func fnIfElse(ctx context.Context, c functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	if types.Truthy(args[0].Value) {
		return c.Evaluate(ctx, args[1].Template)
	}
	return c.Evaluate(ctx, args[2].Template)
}

func fnIf(ctx context.Context, c functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	if types.Truthy(args[0].Value) {
		return c.Evaluate(ctx, args[1].Template)
	}
	return nil, nil
}

// fnJsh parses a string and evaluates it against the same memory.
func fnJsh(ctx context.Context, c functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return c.EvalSource(ctx, args[0].Text())
}
