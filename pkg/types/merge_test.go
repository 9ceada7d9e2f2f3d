package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sandrolain/gojsh/pkg/types"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		depth int
		want  string
	}{
		{"scalars take right", `1`, `"x"`, 0, `"x"`},
		{"types differ", `{"a":1}`, `[1]`, 0, `[1]`},
		{"object over scalar", `1`, `{"a":1}`, 0, `{"a":1}`},
		{"arrays concatenate", `[1,2]`, `[3]`, 0, `[1,2,3]`},
		{"arrays concatenate deep", `[[1]]`, `[[2]]`, types.MergeUnbounded, `[[1],[2]]`},
		{"shallow objects", `{"a":{"x":1},"b":1}`, `{"a":{"y":2},"c":3}`, 0, `{"a":{"y":2},"b":1,"c":3}`},
		{"deep objects", `{"a":{"x":1},"b":1}`, `{"a":{"y":2},"c":3}`, types.MergeUnbounded, `{"a":{"x":1,"y":2},"b":1,"c":3}`},
		{"deep arrays in objects", `{"a":[1]}`, `{"a":[2]}`, types.MergeUnbounded, `{"a":[1,2]}`},
		{"depth one", `{"a":{"b":{"x":1}}}`, `{"a":{"b":{"y":2}}}`, 1, `{"a":{"b":{"y":2}}}`},
		{"depth two", `{"a":{"b":{"x":1}}}`, `{"a":{"b":{"y":2}}}`, 2, `{"a":{"b":{"x":1,"y":2}}}`},
		{"deep scalar conflict", `{"a":{"b":1}}`, `{"a":{"b":2}}`, types.MergeUnbounded, `{"a":{"b":2}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := types.MustUnmarshal(tt.a), types.MustUnmarshal(tt.b)
			got := types.Merge(a, b, tt.depth)
			if diff := cmp.Diff(types.ToNative(types.MustUnmarshal(tt.want)), types.ToNative(got)); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeDoesNotMutate(t *testing.T) {
	a := types.MustUnmarshal(`{"a":{"x":1},"l":[1]}`)
	b := types.MustUnmarshal(`{"a":{"y":2},"l":[2]}`)
	types.Merge(a, b, types.MergeUnbounded)

	if got, _ := types.Marshal(a); string(got) != `{"a":{"x":1},"l":[1]}` {
		t.Errorf("left input changed: %s", got)
	}
	if got, _ := types.Marshal(b); string(got) != `{"a":{"y":2},"l":[2]}` {
		t.Errorf("right input changed: %s", got)
	}
}

func TestMergeKeyOrder(t *testing.T) {
	got := types.Merge(types.MustUnmarshal(`{"b":1,"a":2}`), types.MustUnmarshal(`{"c":3,"b":4}`), 0)
	out, err := types.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"b":4,"a":2,"c":3}` {
		t.Errorf("got %s", out)
	}
}

func TestMergeDepth(t *testing.T) {
	if types.MergeDepth(true) != types.MergeUnbounded {
		t.Error("deep flag should be unbounded")
	}
	if types.MergeDepth(false) != 0 {
		t.Error("shallow flag should be zero")
	}
}
