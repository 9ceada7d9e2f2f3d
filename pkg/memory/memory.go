// Package memory holds the mutable tree a JSH evaluator reads and writes.
//
// The tree is a single object. It always carries a "system" key with the
// owner's name; hosts usually keep the persisted document under "root" and
// request-scoped bindings next to it.
//
// Iteration builtins bind their variables by writing into this tree, so two
// nested iterations over the same variable name overwrite each other.
//
// A Memory is not safe for concurrent use; hosts serialize access.
package memory

import (
	"slices"

	"github.com/sandrolain/gojsh/pkg/path"
	"github.com/sandrolain/gojsh/pkg/types"
)

// SystemKey is the top-level key holding the system name.
const SystemKey = "system"

// Memory is the tree owned by one evaluator.
type Memory struct {
	system string
	tree   *types.Object
}

// New creates a memory holding only the system name.
func New(system string) *Memory {
	m := &Memory{system: system, tree: types.NewObject()}
	m.tree.Set(SystemKey, types.String(system))
	return m
}

// System returns the system name.
func (m *Memory) System() string {
	return m.system
}

// Tree returns the top-level object. Callers must not keep it across Reset.
func (m *Memory) Tree() *types.Object {
	return m.tree
}

// Get returns the value at segs.
func (m *Memory) Get(segs []string) (types.Value, error) {
	return path.Get(m.tree, segs)
}

// Set stores v at segs.
func (m *Memory) Set(segs []string, v types.Value) error {
	return path.Set(m.tree, segs, v)
}

// Delete removes and returns the value at segs.
func (m *Memory) Delete(segs []string) (types.Value, error) {
	return path.Delete(m.tree, segs)
}

// Patch merges v into the value at segs.
func (m *Memory) Patch(segs []string, v types.Value, depth int) error {
	return path.Patch(m.tree, segs, v, depth)
}

// Exists reports whether segs resolves to a value.
func (m *Memory) Exists(segs []string) bool {
	_, err := path.Resolve(m.tree, segs)
	return err == nil
}

// Reset drops every top-level key not listed in keep, then restores the
// system name.
func (m *Memory) Reset(keep ...string) {
	for _, k := range m.tree.Keys() {
		if !slices.Contains(keep, k) {
			m.tree.Delete(k)
		}
	}
	m.tree.Set(SystemKey, types.String(m.system))
}

// Snapshot returns a deep copy of the value at segs.
func (m *Memory) Snapshot(segs []string) (types.Value, error) {
	v, err := m.Get(segs)
	if err != nil {
		return nil, err
	}
	return types.Clone(v), nil
}
