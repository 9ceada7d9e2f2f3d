package evaluator

import (
	"context"

	"github.com/sandrolain/gojsh/pkg/types"
)

// evalList collects the values produced by the items. Items producing
// nothing are left out.
func (e *Evaluator) evalList(ctx context.Context, node *types.ASTNode) (types.Value, error) {
	items := make([]types.Value, 0, len(node.Children))
	for _, child := range node.Children {
		v, err := e.evalNode(ctx, child)
		if err != nil {
			return nil, err
		}
		if v != nil {
			items = append(items, v)
		}
	}
	return types.NewArray(items...), nil
}

// evalObject builds an object from alternating key and value nodes. The
// value node only runs when its key produced something, and the field is
// kept only when both did. Keys are stringified.
func (e *Evaluator) evalObject(ctx context.Context, node *types.ASTNode) (types.Value, error) {
	obj := types.NewObject()
	for i := 0; i < len(node.Children); i += 2 {
		k, err := e.evalNode(ctx, node.Children[i])
		if err != nil {
			return nil, err
		}
		if k == nil || i+1 >= len(node.Children) {
			continue
		}
		v, err := e.evalNode(ctx, node.Children[i+1])
		if err != nil {
			return nil, err
		}
		if v != nil {
			obj.Set(types.Stringify(k), v)
		}
	}
	return obj, nil
}
