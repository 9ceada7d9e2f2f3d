package types

// MergeUnbounded as a depth merges shared object keys at every level.
const MergeUnbounded = -1

// MergeDepth maps a deep flag to a merge depth.
func MergeDepth(deep bool) int {
	if deep {
		return MergeUnbounded
	}
	return 0
}

// Merge returns the right-biased structural merge of a and b without
// mutating either input.
//
// Two arrays concatenate. Two objects take the union of their keys; a key
// present in both takes b's value, or the recursive merge of both values
// when depth is non-zero (depth counts down per level, negative never
// stops). Any other combination returns b.
func Merge(a, b Value, depth int) Value {
	switch x := a.(type) {
	case *Array:
		y, ok := b.(*Array)
		if !ok {
			return b
		}
		items := make([]Value, 0, len(x.Items)+len(y.Items))
		items = append(items, x.Items...)
		items = append(items, y.Items...)
		return NewArray(items...)
	case *Object:
		y, ok := b.(*Object)
		if !ok {
			return b
		}
		next := depth
		if next > 0 {
			next--
		}
		res := NewObject()
		for _, k := range x.keys {
			av := x.values[k]
			bv, shared := y.values[k]
			switch {
			case !shared:
				res.Set(k, av)
			case depth != 0:
				res.Set(k, Merge(av, bv, next))
			default:
				res.Set(k, bv)
			}
		}
		for _, k := range y.keys {
			if !x.Has(k) {
				res.Set(k, y.values[k])
			}
		}
		return res
	default:
		return b
	}
}
