package evaluator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/typecheck"
	"github.com/sandrolain/gojsh/pkg/types"
)

// evalCall evaluates the function name and resolves the call against the
// function table.
func (e *Evaluator) evalCall(ctx context.Context, node *types.ASTNode) (types.Value, error) {
	var name types.Value
	if len(node.Children) > 0 {
		v, err := e.evalNode(ctx, node.Children[0])
		if err != nil {
			return nil, err
		}
		name = v
	}
	fnName, ok := name.(types.String)
	if !ok {
		return nil, types.NewError(types.ErrFunctionName, "Function name in call isn't a string.", node.Position)
	}
	fn, ok := e.funcs[string(fnName)]
	if !ok {
		return nil, types.NewError(types.ErrUnknownFunction, fmt.Sprintf("Function '%s' doesn't exist.", fnName), node.Position).
			WithToken(string(fnName))
	}
	return e.callFunction(ctx, string(fnName), fn, node.Children[1:], node.Position)
}

// callFunction tries the overloads of fn in order and runs the first one
// whose parameters accept the arguments.
//
// Each argument node is evaluated at most once per call, whatever the number
// of overloads tried, since evaluation can write to memory. An argument
// producing no value, or a value its parameter rejects, disqualifies the
// overload. When none matches, the reasons of every overload are reported
// together.
func (e *Evaluator) callFunction(ctx context.Context, name string, fn functions.Function, argNodes []*types.ASTNode, pos int) (types.Value, error) {
	var (
		reasons   []string
		values    = make([]types.Value, len(argNodes))
		evaluated = make([]bool, len(argNodes))
	)

overloads:
	for _, sig := range fn {
		if reason := sig.CheckArity(len(argNodes)); reason != "" {
			reasons = append(reasons, callError(name, sig, reason))
			continue
		}

		args := make([]functions.Argument, len(argNodes))
		for i, argNode := range argNodes {
			param := sig.ParamType(i)
			if functions.IsTemplate(param) {
				args[i] = functions.Argument{Template: argNode}
				continue
			}
			if !evaluated[i] {
				v, err := e.evalNode(ctx, argNode)
				if err != nil {
					return nil, err
				}
				values[i] = v
				evaluated[i] = true
			}
			if values[i] == nil {
				reasons = append(reasons, callError(name, sig, fmt.Sprintf("Argument %d call didn't return a value.", i)))
				continue overloads
			}
			accepted, err := typecheck.Check(values[i], param)
			if err != nil {
				reasons = append(reasons, callError(name, sig, fmt.Sprintf("Argument %d is invalid: %s", i, types.Message(err))))
				continue overloads
			}
			args[i] = functions.Argument{Value: accepted}
		}

		if e.opts.Debug {
			e.logger.Debug("calling function", "function", name, "signature", sig.Render(name))
		}
		return sig.Impl(ctx, e, args[:len(sig.Params)], args[len(sig.Params):])
	}

	msg := fmt.Sprintf("Error on '%s':\n  %s", name, strings.Join(reasons, "\n  "))
	return nil, types.NewError(types.ErrNoMatchingOverload, msg, pos).WithToken(name)
}

func callError(name string, sig functions.Signature, reason string) string {
	return fmt.Sprintf("For (%s): %s", sig.Render(name), reason)
}
