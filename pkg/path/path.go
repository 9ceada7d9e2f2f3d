// Package path parses JSH paths and walks them through a value tree.
//
// A path is an ordered list of string segments. It is written either as a
// dotted string (a.b.c, with a backslash escaping the next character) or as
// an array whose elements are stringified one per segment.
//
// Segments applied to an array are indices: a plain integer counts from the
// start, "-n" counts back from the end (clamped at 0) and "+n" counts from the
// last element, so "+0" addresses the last element and "+1" the slot after
// it. Segments applied to an object are used verbatim as keys. Stepping into
// a scalar is an error.
package path

import (
	"strings"

	"github.com/sandrolain/gojsh/pkg/types"
)

// Parse converts a path value into its segments.
func Parse(v types.Value) ([]string, error) {
	switch t := v.(type) {
	case types.String:
		return ParseString(string(t)), nil
	case *types.Array:
		if t.Len() == 0 {
			return nil, types.Errorf(types.ErrEmptyPath, "Path cannot be an empty array.")
		}
		segs := make([]string, t.Len())
		for i, item := range t.Items {
			segs[i] = types.Stringify(item)
		}
		return segs, nil
	default:
		return nil, types.Errorf(types.ErrPathType, "Path is not of the type string or array.")
	}
}

// ParseString splits a dotted path. The result always holds at least one
// segment, empty segments included.
func ParseString(s string) []string {
	var (
		segs []string
		buf  strings.Builder
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.':
			segs = append(segs, buf.String())
			buf.Reset()
		case '\\':
			if i+1 < len(s) {
				i++
				buf.WriteByte(s[i])
			}
		default:
			buf.WriteByte(c)
		}
	}
	return append(segs, buf.String())
}

// Join renders segments as a dotted path, escaping dots and backslashes so
// that ParseString(Join(segs)) returns segs.
func Join(segs []string) string {
	var sb strings.Builder
	for i, seg := range segs {
		if i > 0 {
			sb.WriteByte('.')
		}
		for j := 0; j < len(seg); j++ {
			if seg[j] == '.' || seg[j] == '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteByte(seg[j])
		}
	}
	return sb.String()
}

// Value converts segments back into an array value.
func Value(segs []string) *types.Array {
	items := make([]types.Value, len(segs))
	for i, seg := range segs {
		items[i] = types.String(seg)
	}
	return types.NewArray(items...)
}
