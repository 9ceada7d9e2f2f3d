package evaluator

import (
	"context"

	"github.com/sandrolain/gojsh/pkg/types"
)

func (e *Evaluator) evalNode(ctx context.Context, node *types.ASTNode) (types.Value, error) {
	// Check context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if node == nil {
		return nil, nil
	}

	// Stack-style depth accounting: every nested node visit counts.
	if p := getDepthPtr(ctx); p != nil {
		*p++
		defer func() { *p-- }()
		if *p > e.opts.MaxDepth {
			return nil, types.NewError(types.ErrDepthExceeded, "Maximum evaluation depth exceeded.", node.Position)
		}
	}

	// Debug logging
	if e.opts.Debug {
		e.logger.Debug("evaluating node",
			"type", node.Type,
			"position", node.Position)
	}

	// Dispatch based on node type
	switch node.Type {
	case types.NodeValue:
		return node.Value, nil
	case types.NodeBase:
		return e.evalBase(ctx, node)
	case types.NodeList:
		return e.evalList(ctx, node)
	case types.NodeObj:
		return e.evalObject(ctx, node)
	case types.NodeGet:
		return e.evalGet(node)
	case types.NodeCall:
		return e.evalCall(ctx, node)
	default:
		return nil, types.NewError(types.ErrInvalidNode, "Invalid JSH command type '"+string(node.Type)+"' given", node.Position)
	}
}

// evalBase runs statements in order and keeps the last value produced.
func (e *Evaluator) evalBase(ctx context.Context, node *types.ASTNode) (types.Value, error) {
	var result types.Value
	for _, child := range node.Children {
		v, err := e.evalNode(ctx, child)
		if err != nil {
			return nil, err
		}
		if v != nil {
			result = v
		}
	}
	return result, nil
}
