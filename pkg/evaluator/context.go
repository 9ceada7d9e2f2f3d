package evaluator

import (
	"context"
)

type depthKey struct{}

// getDepthPtr returns the depth counter carried by ctx, or nil.
func getDepthPtr(ctx context.Context) *int {
	if p, ok := ctx.Value(depthKey{}).(*int); ok {
		return p
	}
	return nil
}

// withNewDepthPtr returns a context carrying a fresh depth counter.
// Call this once at the start of each top-level evaluation.
func withNewDepthPtr(ctx context.Context) context.Context {
	d := 0
	return context.WithValue(ctx, depthKey{}, &d)
}
