package types

import (
	"math"
	"strconv"
	"strings"
)

// Converters pass absence through: a nil input always yields nil.

// ToBoolean coerces v with JSON truthiness: null, false, 0, NaN, "", [] and {}
// are false.
func ToBoolean(v Value) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case Null:
		return Bool(false)
	case Bool:
		return t
	case Number:
		return Bool(t != 0 && !math.IsNaN(float64(t)))
	case String:
		return Bool(t != "")
	case *Array:
		return Bool(len(t.Items) > 0)
	case *Object:
		return Bool(t.Len() > 0)
	default:
		return nil
	}
}

// Truthy is ToBoolean collapsed to a Go bool; absence is false.
func Truthy(v Value) bool {
	b, _ := ToBoolean(v).(Bool)
	return bool(b)
}

// ToString stringifies scalars and serializes arrays and objects as JSON.
func ToString(v Value) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case String:
		return t
	default:
		return String(Stringify(v))
	}
}

// Stringify renders v the way ToString does, returning a Go string.
// Absence renders as the empty string.
func Stringify(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(t))
	case Number:
		return FormatNumber(float64(t))
	case String:
		return string(t)
	default:
		b, err := Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// ToNumber coerces v to a number. Booleans give 0/1, containers give 0 when
// empty and 1 otherwise, null gives 0 and numeric strings are parsed.
// Non-numeric strings yield absence.
func ToNumber(v Value) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case Null:
		return Number(0)
	case Bool:
		if t {
			return Number(1)
		}
		return Number(0)
	case Number:
		return t
	case String:
		n, ok := ParseNumber(string(t))
		if !ok {
			return nil
		}
		return Number(n)
	case *Array:
		if len(t.Items) > 0 {
			return Number(1)
		}
		return Number(0)
	case *Object:
		if t.Len() > 0 {
			return Number(1)
		}
		return Number(0)
	default:
		return nil
	}
}

// ToInteger is ToNumber truncated toward zero.
func ToInteger(v Value) Value {
	n, ok := ToNumber(v).(Number)
	if !ok {
		return nil
	}
	return Number(math.Trunc(float64(n)))
}

// IsInteger reports whether n has no fractional part.
func IsInteger(n float64) bool {
	return !math.IsInf(n, 0) && math.Trunc(n) == n
}

// ParseNumber parses s the way a JSON-oriented scripting host parses numeric
// text: surrounding whitespace is ignored, the empty string is 0, hex/octal/
// binary prefixes and the Infinity literals are accepted.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	for _, c := range s {
		// ParseFloat also knows "inf", "nan", hex floats and underscores;
		// none of them are numeric text here.
		if !(c >= '0' && c <= '9') && c != '.' && c != 'e' && c != 'E' && c != '+' && c != '-' {
			return 0, false
		}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return n, true
		}
		return 0, false
	}
	return n, true
}

// FormatNumber renders n using the shortest representation that round-trips,
// switching to exponent notation below 1e-6 and from 1e21 on.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	abs := math.Abs(n)
	if abs < 1e-6 || abs >= 1e21 {
		str := strconv.FormatFloat(n, 'g', -1, 64)
		str = strings.Replace(str, "e-0", "e-", 1)
		str = strings.Replace(str, "e+0", "e+", 1)
		return str
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
