package functions

import (
	"math"

	"github.com/sandrolain/gojsh/pkg/types"
)

// Argument is a call argument after matching: either an accepted value or,
// for template parameters, the raw node.
type Argument struct {
	Value    types.Value
	Template *types.ASTNode
}

// Float returns the argument as a float64. Non-numbers give 0.
func (a Argument) Float() float64 {
	n, _ := a.Value.(types.Number)
	return float64(n)
}

// Int returns the argument truncated to an int, saturating beyond 2^53.
func (a Argument) Int() int {
	f := math.Trunc(a.Float())
	switch {
	case f != f:
		return 0
	case f > maxExact:
		return maxExact
	case f < -maxExact:
		return -maxExact
	}
	return int(f)
}

// maxExact is the largest integer a float64 holds exactly.
const maxExact = 1 << 53

// Text returns a string argument. Non-strings give "".
func (a Argument) Text() string {
	s, _ := a.Value.(types.String)
	return string(s)
}

// Array returns an array argument or nil.
func (a Argument) Array() *types.Array {
	arr, _ := a.Value.(*types.Array)
	return arr
}

// Object returns an object argument or nil.
func (a Argument) Object() *types.Object {
	obj, _ := a.Value.(*types.Object)
	return obj
}

// Path returns the segments of an argument accepted as "path".
func (a Argument) Path() []string {
	arr := a.Array()
	if arr == nil {
		return nil
	}
	segs := make([]string, arr.Len())
	for i, item := range arr.Items {
		segs[i] = types.Stringify(item)
	}
	return segs
}

// Values extracts the values of args.
func Values(args []Argument) []types.Value {
	out := make([]types.Value, len(args))
	for i, a := range args {
		out[i] = a.Value
	}
	return out
}
