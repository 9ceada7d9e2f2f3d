package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// Marshal serializes v as compact JSON. Object keys keep their insertion
// order, non-finite numbers and absence serialize as null.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (a *Array) MarshalJSON() ([]byte, error) {
	return Marshal(a)
}

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	return Marshal(o)
}

func encode(buf *bytes.Buffer, v Value) error {
	switch t := v.(type) {
	case nil, Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(t)))
	case Number:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(FormatNumber(f))
	case String:
		return encodeString(buf, string(t))
	case *Array:
		buf.WriteByte('[')
		for i, item := range t.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *Object:
		buf.WriteByte('{')
		for i, k := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encode(buf, t.values[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode %T", v)
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// Unmarshal parses a single JSON document into a Value, preserving the
// order of object keys.
func Unmarshal(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

// MustUnmarshal is like Unmarshal but panics on malformed input. It is meant
// for literals in code and tests.
func MustUnmarshal(text string) Value {
	v, err := Unmarshal([]byte(text))
	if err != nil {
		panic(fmt.Sprintf("types: MustUnmarshal(%q): %v", text, err))
	}
	return v
}

// frame is an open container on the decoder stack.
type frame struct {
	arr *Array
	obj *Object
	key string
	// expectingKey is true while an object waits for its next field name.
	expectingKey bool
}

// Decode reads a single JSON document from r.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var (
		stack  []*frame
		result Value
		done   bool
	)

	emit := func(v Value) {
		if len(stack) == 0 {
			result = v
			done = true
			return
		}
		top := stack[len(stack)-1]
		if top.obj != nil {
			top.obj.Set(top.key, v)
			top.expectingKey = true
			return
		}
		top.arr.Append(v)
	}

	for !done {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("decode json: %w", io.ErrUnexpectedEOF)
			}
			return nil, fmt.Errorf("decode json: %w", err)
		}
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				stack = append(stack, &frame{obj: NewObject(), expectingKey: true})
			case '[':
				stack = append(stack, &frame{arr: NewArray()})
			case '}', ']':
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.obj != nil {
					emit(top.obj)
				} else {
					emit(top.arr)
				}
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].obj != nil && stack[n-1].expectingKey {
				stack[n-1].key = t
				stack[n-1].expectingKey = false
				continue
			}
			emit(String(t))
		case json.Number:
			f, err := strconv.ParseFloat(string(t), 64)
			if err != nil {
				return nil, fmt.Errorf("decode json: number %s: %w", t, err)
			}
			emit(Number(f))
		case float64:
			emit(Number(t))
		case bool:
			emit(Bool(t))
		case nil:
			emit(Null{})
		default:
			return nil, fmt.Errorf("decode json: unexpected token %T", tok)
		}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: unexpected data after top-level value")
	}
	return result, nil
}
