package evaluator

import (
	"context"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/types"
)

// evalGet resolves a variable directly against memory. Its segments are not
// type checked as a path argument would be.
func (e *Evaluator) evalGet(node *types.ASTNode) (types.Value, error) {
	return e.memory.Get(node.Path)
}

func fnGet(_ context.Context, c functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return c.Memory().Get(args[0].Path())
}

func fnSet(_ context.Context, c functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return nil, c.Memory().Set(args[0].Path(), args[1].Value)
}

func fnDelete(_ context.Context, c functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return c.Memory().Delete(args[0].Path())
}

func fnExists(_ context.Context, c functions.Caller, args, _ []functions.Argument) (types.Value, error) {
	return types.Bool(c.Memory().Exists(args[0].Path())), nil
}
