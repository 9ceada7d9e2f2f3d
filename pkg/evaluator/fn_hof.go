package evaluator

import (
	"context"
	"strconv"

	"github.com/sandrolain/gojsh/pkg/functions"
	"github.com/sandrolain/gojsh/pkg/typecheck"
	"github.com/sandrolain/gojsh/pkg/types"
)

// entry is one element of an iterated collection.
type entry struct {
	key   string
	value types.Value
}

// entries lists the elements of an array, object or string. Array and
// string keys are decimal indices; strings yield one string per rune. The
// list is taken before the body runs, so the body may modify the source.
func entries(v types.Value) []entry {
	switch t := v.(type) {
	case *types.Array:
		out := make([]entry, len(t.Items))
		for i, item := range t.Items {
			out[i] = entry{strconv.Itoa(i), item}
		}
		return out
	case *types.Object:
		keys := t.Keys()
		out := make([]entry, len(keys))
		for i, k := range keys {
			item, _ := t.Get(k)
			out[i] = entry{k, item}
		}
		return out
	case types.String:
		var out []entry
		i := 0
		for _, r := range string(t) {
			out = append(out, entry{strconv.Itoa(i), types.String(r)})
			i++
		}
		return out
	default:
		return nil
	}
}

// folder accumulates the values produced by an iteration body.
type folder interface {
	add(v types.Value)
	result() types.Value
}

type listFolder struct{ items []types.Value }

func (f *listFolder) add(v types.Value) { f.items = append(f.items, v) }

func (f *listFolder) result() types.Value { return types.NewArray(f.items...) }

// pairFolder expects objects with a "k" and a "v" field and builds an object
// from them. Anything else is skipped.
type pairFolder struct{ obj *types.Object }

func (f *pairFolder) add(v types.Value) {
	o, ok := v.(*types.Object)
	if !ok {
		return
	}
	k, hasK := o.Get("k")
	val, hasV := o.Get("v")
	if hasK && hasV {
		f.obj.Set(types.Stringify(k), val)
	}
}

func (f *pairFolder) result() types.Value { return f.obj }

type lastFolder struct{ last types.Value }

func (f *lastFolder) add(v types.Value) { f.last = v }

func (f *lastFolder) result() types.Value { return f.last }

// iterator builds the two signatures shared by map, kmap and for:
//
//	(name source valuePath keyPath body)
//	(name source valuePath body)
//
// For each entry the key and value are written to memory at their paths,
// then the body runs. Nested iterations binding the same path overwrite
// each other's variables.
func iterator(newFolder func() folder) functions.Function {
	source := []any{typecheck.Or, types.TagArray, types.TagObject, types.TagString}

	run := func(ctx context.Context, c functions.Caller, src types.Value, valuePath, keyPath []string, body *types.ASTNode) (types.Value, error) {
		f := newFolder()
		for _, en := range entries(src) {
			if keyPath != nil {
				if err := c.Memory().Set(keyPath, types.String(en.key)); err != nil {
					return nil, err
				}
			}
			if err := c.Memory().Set(valuePath, en.value); err != nil {
				return nil, err
			}
			v, err := c.Evaluate(ctx, body)
			if err != nil {
				return nil, err
			}
			if v != nil {
				f.add(v)
			}
		}
		return f.result(), nil
	}

	return functions.Function{
		functions.Sig(func(ctx context.Context, c functions.Caller, args, _ []functions.Argument) (types.Value, error) {
			return run(ctx, c, args[0].Value, args[1].Path(), args[2].Path(), args[3].Template)
		}, source, typecheck.Path, typecheck.Path, typecheck.Template).Named("inputValue", "valuePath", "keyPath", "mapping"),
		functions.Sig(func(ctx context.Context, c functions.Caller, args, _ []functions.Argument) (types.Value, error) {
			return run(ctx, c, args[0].Value, args[1].Path(), nil, args[2].Template)
		}, source, typecheck.Path, typecheck.Template).Named("inputValue", "valuePath", "mapping"),
	}
}
