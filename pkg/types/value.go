package types

import (
	"maps"
	"slices"
)

// Value is a dynamic JSON value. The set of implementations is closed:
// Null, Bool, Number, String, *Array and *Object.
//
// A nil Value is not a JSON value: it is the "no value" outcome of an
// evaluation and is propagated distinctly from Null.
type Value interface {
	jshValue() // sealed marker
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number. Integers are numbers without a fractional part.
type Number float64

// String is a JSON string.
type String string

// Array is a mutable JSON array. It is shared by reference so that path
// operations can grow or shrink it in place.
type Array struct {
	Items []Value
}

// Object is a mutable JSON object that remembers key insertion order.
type Object struct {
	keys   []string
	values map[string]Value
}

func (Null) jshValue()    {}
func (Bool) jshValue()    {}
func (Number) jshValue()  {}
func (String) jshValue()  {}
func (*Array) jshValue()  {}
func (*Object) jshValue() {}

// Base type tags reported by TypeOf.
const (
	TagNull    = "null"
	TagBoolean = "boolean"
	TagNumber  = "number"
	TagString  = "string"
	TagArray   = "array"
	TagObject  = "object"
	TagAbsent  = "undefined"
)

// TypeOf returns the base type tag of v.
func TypeOf(v Value) string {
	switch v.(type) {
	case Null:
		return TagNull
	case Bool:
		return TagBoolean
	case Number:
		return TagNumber
	case String:
		return TagString
	case *Array:
		return TagArray
	case *Object:
		return TagObject
	default:
		return TagAbsent
	}
}

// IsContainer reports whether v is an array or an object.
func IsContainer(v Value) bool {
	switch v.(type) {
	case *Array, *Object:
		return true
	default:
		return false
	}
}

// NewArray creates an array holding items.
func NewArray(items ...Value) *Array {
	if items == nil {
		items = []Value{}
	}
	return &Array{Items: items}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.Items)
}

// Append adds values at the end of the array.
func (a *Array) Append(values ...Value) {
	a.Items = append(a.Items, values...)
}

// RemoveAt removes the element at i, shifting the following elements down.
func (a *Array) RemoveAt(i int) Value {
	v := a.Items[i]
	a.Items = append(a.Items[:i], a.Items[i+1:]...)
	return v
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the field names in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Set stores value under key. New keys are appended to the key order.
func (o *Object) Set(key string, value Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Delete removes key and returns the removed value.
func (o *Object) Delete(key string) (Value, bool) {
	v, ok := o.values[key]
	if !ok {
		return nil, false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// With sets key to value and returns o, for building literals in code.
func (o *Object) With(key string, value Value) *Object {
	o.Set(key, value)
	return o
}

// ToNative converts v into plain Go values (nil, bool, float64, string,
// []any, map[string]any). Absence converts to nil as well.
func ToNative(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case *Array:
		out := make([]any, len(t.Items))
		for i, item := range t.Items {
			out[i] = ToNative(item)
		}
		return out
	case *Object:
		out := make(map[string]any, len(t.keys))
		for _, k := range t.keys {
			out[k] = ToNative(t.values[k])
		}
		return out
	default:
		return nil
	}
}

// FromNative converts plain Go values into a Value. Map keys are inserted in
// sorted order; use the JSON decoder when source order matters.
func FromNative(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case float32:
		return Number(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case string:
		return String(t)
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromNative(item)
		}
		return NewArray(items...)
	case []string:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = String(item)
		}
		return NewArray(items...)
	case map[string]any:
		o := NewObject()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			o.Set(k, FromNative(t[k]))
		}
		return o
	default:
		return Null{}
	}
}

// Clone returns a deep copy of v. Scalars are returned as is.
func Clone(v Value) Value {
	switch t := v.(type) {
	case *Array:
		items := make([]Value, len(t.Items))
		for i, item := range t.Items {
			items[i] = Clone(item)
		}
		return NewArray(items...)
	case *Object:
		o := &Object{keys: make([]string, 0, len(t.keys)), values: make(map[string]Value, len(t.keys))}
		for _, k := range t.keys {
			o.Set(k, Clone(t.values[k]))
		}
		return o
	default:
		return v
	}
}
