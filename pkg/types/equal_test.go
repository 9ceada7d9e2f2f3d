package types_test

import (
	"testing"

	"github.com/sandrolain/gojsh/pkg/types"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"numbers", `1`, `1`, true},
		{"different numbers", `1`, `2`, false},
		{"number and string", `1`, `"1"`, false},
		{"null and null", `null`, `null`, true},
		{"null and object", `null`, `{}`, false},
		{"object and null", `{}`, `null`, false},
		{"null and false", `null`, `false`, false},
		{"arrays", `[1,[2,{"a":3}]]`, `[1,[2,{"a":3}]]`, true},
		{"array order", `[1,2]`, `[2,1]`, false},
		{"array length", `[1,2]`, `[1,2,3]`, false},
		{"array and object", `[]`, `{}`, false},
		{"key order ignored", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"key sets differ", `{"a":1,"b":2}`, `{"a":1,"c":2}`, false},
		{"extra key", `{"a":1}`, `{"a":1,"b":2}`, false},
		{"nested values differ", `{"a":{"b":[1]}}`, `{"a":{"b":[2]}}`, false},
		{"null field", `{"a":null}`, `{"a":null}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := types.MustUnmarshal(tt.a), types.MustUnmarshal(tt.b)
			if got := types.Equal(a, b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := types.Equal(b, a); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestEqualAbsence(t *testing.T) {
	if !types.Equal(nil, nil) {
		t.Error("absence should equal absence")
	}
	if types.Equal(nil, types.Null{}) || types.Equal(types.Null{}, nil) {
		t.Error("absence should not equal null")
	}
}
