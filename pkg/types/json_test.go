package types_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sandrolain/gojsh/pkg/types"
)

func TestUnmarshalKeepsKeyOrder(t *testing.T) {
	in := `{"z":1,"a":{"y":[1,2,{"q":null}],"b":true},"m":"s"}`
	v, err := types.Unmarshal([]byte(in))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	out, err := types.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != in {
		t.Errorf("got %s, want %s", out, in)
	}
}

func TestUnmarshalValues(t *testing.T) {
	v, err := types.Unmarshal([]byte(` {"n": 1.5e2, "s": "aé", "l": [], "o": {}, "f": false} `))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := map[string]any{
		"n": float64(150),
		"s": "aé",
		"l": []any{},
		"o": map[string]any{},
		"f": false,
	}
	if diff := cmp.Diff(want, types.ToNative(v)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalScalars(t *testing.T) {
	tests := []struct {
		in   string
		want types.Value
	}{
		{`null`, types.Null{}},
		{`true`, types.Bool(true)},
		{`-3`, types.Number(-3)},
		{`"x"`, types.String("x")},
	}
	for _, tt := range tests {
		got, err := types.Unmarshal([]byte(tt.in))
		if err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnmarshalErrors(t *testing.T) {
	for _, in := range []string{``, `{`, `[1,`, `{"a":1} x`, `1 2`} {
		if _, err := types.Unmarshal([]byte(in)); err == nil {
			t.Errorf("Unmarshal(%q) expected error", in)
		}
	}
}

func TestMarshal(t *testing.T) {
	arr := types.NewArray(
		types.Number(math.NaN()),
		types.Number(math.Inf(1)),
		nil,
		types.String("<a&b>"),
		types.Number(0.5),
	)
	out, err := types.Marshal(arr)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `[null,null,null,"<a&b>",0.5]`; string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}

func TestDecodeReader(t *testing.T) {
	v, err := types.Decode(strings.NewReader(`[{"b":1,"a":2}]`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	arr, ok := v.(*types.Array)
	if !ok || arr.Len() != 1 {
		t.Fatalf("unexpected value %v", v)
	}
	obj := arr.Items[0].(*types.Object)
	if diff := cmp.Diff([]string{"b", "a"}, obj.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	orig := types.MustUnmarshal(`{"a":[1,{"b":2}]}`)
	cp := types.Clone(orig)
	cp.(*types.Object).Set("c", types.Null{})
	inner, _ := cp.(*types.Object).Get("a")
	inner.(*types.Array).Append(types.Number(3))

	if got, _ := types.Marshal(orig); string(got) != `{"a":[1,{"b":2}]}` {
		t.Errorf("original changed: %s", got)
	}
}
