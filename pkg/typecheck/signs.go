package typecheck

import "github.com/sandrolain/gojsh/pkg/types"

// signs is the set of allowed signs of a number.
type signs struct {
	positive, negative, zero bool
}

func parseSigns(tokens []types.Value) signs {
	var s signs
	for _, tok := range tokens {
		str, ok := tok.(types.String)
		if !ok {
			continue
		}
		switch t := normalize(string(str)); t {
		case "positive", "pos":
			s.positive = true
		case "negative", "neg":
			s.negative = true
		case "zero":
			s.zero = true
		default:
			for _, c := range t {
				switch c {
				case 'p', '+':
					s.positive = true
				case 'n', '-':
					s.negative = true
				case 'z':
					s.zero = true
				}
			}
		}
	}
	return s
}

// check accepts n unless its sign falls outside the set. A set with all or
// none of the signs accepts every number.
func (s signs) check(n float64) error {
	if s.positive == s.negative && s.positive == s.zero {
		return nil
	}
	switch {
	case s.positive == s.negative:
		if s.zero {
			if n != 0 {
				return mismatch("Is a number but not zero")
			}
		} else if n == 0 {
			return mismatch("Is a number but its zero")
		}
	case s.positive == s.zero:
		if s.negative {
			if n >= 0 {
				return mismatch("Is a number but not negative")
			}
		} else if n < 0 {
			return mismatch("Is a number but its negative")
		}
	case s.positive:
		if n <= 0 {
			return mismatch("Is a number but not positive")
		}
	default:
		if n > 0 {
			return mismatch("Is a number but its positive")
		}
	}
	return nil
}
