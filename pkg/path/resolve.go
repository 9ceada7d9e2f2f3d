package path

import (
	"github.com/sandrolain/gojsh/pkg/types"
)

// Location is the result of walking a path.
type Location struct {
	// Parent is the container holding Value. It is nil for the empty walk.
	Parent types.Value
	Value  types.Value
	// Key is the object key of the last step; Index the array index.
	Key   string
	Index int
	// Path is the dotted form of the consumed segments.
	Path string
}

// Step is a single resolved segment.
type Step struct {
	Key   string
	Index int
	Array bool
}

// Level resolves seg against container. at names the container in error
// messages.
func Level(container types.Value, seg, at string) (Step, error) {
	switch c := container.(type) {
	case *types.Object:
		return Step{Key: seg}, nil
	case *types.Array:
		level := seg
		inverse, over := false, false
		if len(level) > 0 && level[0] == '-' {
			inverse = true
			level = level[1:]
		} else if len(level) > 0 && level[0] == '+' {
			over = true
			level = level[1:]
		}
		n, ok := leadingInt(level)
		if !ok {
			return Step{}, types.Errorf(types.ErrInvalidLevel, "The level '%s' is not valid for the array '%s'.", level, at)
		}
		switch {
		case inverse:
			n = max(c.Len()-n, 0)
		case over:
			n = c.Len() + n - 1
		}
		return Step{Index: n, Array: true}, nil
	default:
		return Step{}, types.Errorf(types.ErrNotContainer, "The value '%s' is not an object/array.", at)
	}
}

// leadingInt reads an optionally signed decimal integer from the start of s,
// ignoring leading whitespace and anything after the digits.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if n < 1<<40 {
			n = n*10 + int(s[i]-'0')
		}
		i++
	}
	if i == start {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func extend(consumed, seg string) string {
	if consumed == "" {
		return seg
	}
	return consumed + "." + seg
}

// Resolve walks segs from tree. Every step must land on an existing value.
func Resolve(tree types.Value, segs []string) (*Location, error) {
	loc := &Location{Value: tree}
	for _, seg := range segs {
		step, err := Level(loc.Value, seg, loc.Path)
		if err != nil {
			return nil, err
		}
		loc.Path = extend(loc.Path, seg)

		var next types.Value
		switch c := loc.Value.(type) {
		case *types.Object:
			next, _ = c.Get(step.Key)
		case *types.Array:
			if step.Index >= 0 && step.Index < c.Len() {
				next = c.Items[step.Index]
			}
		}
		if next == nil {
			return nil, types.Errorf(types.ErrValueNotFound, "The value %s doesn't exist.", loc.Path)
		}
		loc.Parent = loc.Value
		loc.Value = next
		loc.Key = step.Key
		loc.Index = step.Index
	}
	return loc, nil
}

// Get returns the value at segs.
func Get(tree types.Value, segs []string) (types.Value, error) {
	loc, err := Resolve(tree, segs)
	if err != nil {
		return nil, err
	}
	return loc.Value, nil
}

// Set stores v at segs. The parent of the last segment must exist. Writing
// past the end of an array pads it with nulls.
func Set(tree types.Value, segs []string, v types.Value) error {
	if len(segs) == 0 {
		return types.Errorf(types.ErrEmptyPath, "Path cannot be an empty array.")
	}
	last := segs[len(segs)-1]
	loc, err := Resolve(tree, segs[:len(segs)-1])
	if err != nil {
		return err
	}
	step, err := Level(loc.Value, last, loc.Path)
	if err != nil {
		return err
	}
	if reaches(v, loc.Value) {
		return types.Errorf(types.ErrCircularValue, "The value %s would contain itself.", extend(loc.Path, last))
	}
	switch c := loc.Value.(type) {
	case *types.Object:
		c.Set(step.Key, v)
	case *types.Array:
		if step.Index < 0 {
			return types.Errorf(types.ErrInvalidLevel, "The level '%s' is not valid for the array '%s'.", last, loc.Path)
		}
		for c.Len() < step.Index {
			c.Append(types.Null{})
		}
		if step.Index == c.Len() {
			c.Append(v)
		} else {
			c.Items[step.Index] = v
		}
	}
	return nil
}

// Delete removes the value at segs and returns it. Array elements after it
// shift down by one.
func Delete(tree types.Value, segs []string) (types.Value, error) {
	loc, err := Resolve(tree, segs)
	if err != nil {
		return nil, err
	}
	switch p := loc.Parent.(type) {
	case *types.Array:
		p.RemoveAt(loc.Index)
	case *types.Object:
		p.Delete(loc.Key)
	default:
		return nil, types.Errorf(types.ErrEmptyPath, "Path cannot be an empty array.")
	}
	return loc.Value, nil
}

// Patch replaces the value at segs with its merge with v.
func Patch(tree types.Value, segs []string, v types.Value, depth int) error {
	loc, err := Resolve(tree, segs)
	if err != nil {
		return err
	}
	merged := types.Merge(loc.Value, v, depth)
	if loc.Parent != nil && reaches(merged, loc.Parent) {
		return types.Errorf(types.ErrCircularValue, "The value %s would contain itself.", loc.Path)
	}
	switch p := loc.Parent.(type) {
	case *types.Array:
		p.Items[loc.Index] = merged
	case *types.Object:
		p.Set(loc.Key, merged)
	default:
		return types.Errorf(types.ErrEmptyPath, "Path cannot be an empty array.")
	}
	return nil
}

// reaches reports whether the container target is v itself or is nested
// anywhere inside it. Memory must stay a tree.
func reaches(v, target types.Value) bool {
	switch t := v.(type) {
	case *types.Array:
		if a, ok := target.(*types.Array); ok && a == t {
			return true
		}
		for _, item := range t.Items {
			if reaches(item, target) {
				return true
			}
		}
	case *types.Object:
		if o, ok := target.(*types.Object); ok && o == t {
			return true
		}
		for _, k := range t.Keys() {
			item, _ := t.Get(k)
			if reaches(item, target) {
				return true
			}
		}
	}
	return false
}
