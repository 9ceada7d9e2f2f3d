package path_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sandrolain/gojsh/pkg/path"
	"github.com/sandrolain/gojsh/pkg/types"
)

func tree(t *testing.T) types.Value {
	t.Helper()
	return types.MustUnmarshal(`{
		"root": {
			"books": {"book1": {"name": "Book 1"}},
			"values": {"array": [1, 2, 4, 8, 16], "n": 3}
		},
		"test": [111, 222, 333]
	}`)
}

func native(t *testing.T, v types.Value) any {
	t.Helper()
	return types.ToNative(v)
}

func TestGet(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"root.books.book1.name", `"Book 1"`},
		{"test.0", `111`},
		{"test.2", `333`},
		{"test.-1", `333`},
		{"test.-3", `111`},
		{"test.-10", `111`},
		{"test.+0", `333`},
		{"test.+-1", `222`},
		{"test.1abc", `222`},
		{"root.values", `{"array":[1,2,4,8,16],"n":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := path.Get(tree(t), path.ParseString(tt.path))
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if diff := cmp.Diff(native(t, types.MustUnmarshal(tt.want)), native(t, got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetErrors(t *testing.T) {
	tests := []struct {
		path string
		code types.ErrorCode
		msg  string
	}{
		{"invalid.path", types.ErrValueNotFound, "The value invalid doesn't exist."},
		{"root.books.book2", types.ErrValueNotFound, "The value root.books.book2 doesn't exist."},
		{"test.3", types.ErrValueNotFound, "The value test.3 doesn't exist."},
		{"test.+1", types.ErrValueNotFound, "The value test.+1 doesn't exist."},
		{"test.x", types.ErrInvalidLevel, "The level 'x' is not valid for the array 'test'."},
		{"test.-", types.ErrInvalidLevel, "The level '' is not valid for the array 'test'."},
		{"root.values.n.x", types.ErrNotContainer, "The value 'root.values.n' is not an object/array."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := path.Get(tree(t), path.ParseString(tt.path))
			assertError(t, err, tt.code, tt.msg)
		})
	}
}

func TestErrorKinds(t *testing.T) {
	_, err := path.Get(tree(t), []string{"missing"})
	if !types.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
	_, err = path.Get(tree(t), []string{"test", "x"})
	if !types.IsBadCall(err) {
		t.Errorf("expected bad-call, got %v", err)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value string
		check string
		want  string
	}{
		{"append with plus", "root.values.array.+2", `555`, "root.values.array", `[1,2,4,8,16,null,555]`},
		{"append with plus one", "root.values.array.+1", `32`, "root.values.array", `[1,2,4,8,16,32]`},
		{"plus zero is the last element", "root.values.array.+0", `32`, "root.values.array", `[1,2,4,8,32]`},
		{"append at length", "test.3", `444`, "test", `[111,222,333,444]`},
		{"pad past length", "test.5", `0`, "test", `[111,222,333,null,null,0]`},
		{"replace element", "test.-1", `"x"`, "test", `[111,222,"x"]`},
		{"new key", "root.books.book2", `{"name":"Book 2"}`, "root.books.book2.name", `"Book 2"`},
		{"replace key", "root.values.n", `[1]`, "root.values.n", `[1]`},
		{"top level", "fresh", `true`, "fresh", `true`},
		{"empty segment", "", `1`, "", `1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tree(t)
			if err := path.Set(tr, path.ParseString(tt.path), types.MustUnmarshal(tt.value)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := path.Get(tr, path.ParseString(tt.check))
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if diff := cmp.Diff(native(t, types.MustUnmarshal(tt.want)), native(t, got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetErrors(t *testing.T) {
	tests := []struct {
		path string
		code types.ErrorCode
		msg  string
	}{
		{"nope.a", types.ErrValueNotFound, "The value nope doesn't exist."},
		{"root.values.n.a", types.ErrNotContainer, "The value 'root.values.n' is not an object/array."},
		{"test.abc", types.ErrInvalidLevel, "The level 'abc' is not valid for the array 'test'."},
		{"test.+-9", types.ErrInvalidLevel, "The level '+-9' is not valid for the array 'test'."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := path.Set(tree(t), path.ParseString(tt.path), types.Null{})
			assertError(t, err, tt.code, tt.msg)
		})
	}
}

func TestSetRejectsSelfContainingValue(t *testing.T) {
	tr := tree(t)
	root, _ := path.Get(tr, path.ParseString("root"))
	err := path.Set(tr, path.ParseString("root.self"), root)
	assertError(t, err, types.ErrCircularValue, "The value root.self would contain itself.")

	// nested one level down in a fresh wrapper
	err = path.Set(tr, path.ParseString("root.books.copy"), types.NewArray(root))
	assertError(t, err, types.ErrCircularValue, "The value root.books.copy would contain itself.")

	if root.(*types.Object).Has("self") {
		t.Error("rejected value was stored")
	}
	if _, err := types.Marshal(tr); err != nil {
		t.Errorf("Marshal: %v", err)
	}

	// a sibling subtree is not a cycle
	values, _ := path.Get(tr, path.ParseString("root.values"))
	if err := path.Set(tr, path.ParseString("root.books.values"), values); err != nil {
		t.Errorf("Set: %v", err)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	values := []string{`null`, `0`, `"s"`, `[1,[2]]`, `{"a":{"b":null}}`}
	paths := []string{"root.x", "test.1", "test.+0", "root.books.book1"}

	for _, p := range paths {
		for _, v := range values {
			tr := tree(t)
			segs := path.ParseString(p)
			in := types.MustUnmarshal(v)
			if err := path.Set(tr, segs, in); err != nil {
				t.Fatalf("Set(%s): %v", p, err)
			}
			// "+0" moves on once the element exists
			if p == "test.+0" {
				segs = path.ParseString("test.-1")
			}
			got, err := path.Get(tr, segs)
			if err != nil {
				t.Fatalf("Get(%s): %v", p, err)
			}
			if !types.Equal(in, got) {
				t.Errorf("%s: set %s, got %v", p, v, got)
			}
		}
	}
}

func TestDelete(t *testing.T) {
	tr := tree(t)
	got, err := path.Delete(tr, path.ParseString("test.1"))
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got != types.Number(222) {
		t.Errorf("removed %v, want 222", got)
	}
	rest, _ := path.Get(tr, []string{"test"})
	if diff := cmp.Diff([]any{float64(111), float64(333)}, native(t, rest)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = path.Delete(tr, path.ParseString("root.books"))
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"book1": map[string]any{"name": "Book 1"}}, native(t, got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	root, _ := path.Get(tr, []string{"root"})
	if root.(*types.Object).Has("books") {
		t.Error("books should be gone")
	}

	_, err = path.Delete(tr, path.ParseString("root.books"))
	assertError(t, err, types.ErrValueNotFound, "The value root.books doesn't exist.")
}

func TestPatch(t *testing.T) {
	tr := tree(t)
	if err := path.Patch(tr, path.ParseString("root.values"), types.MustUnmarshal(`{"array":[32],"m":1}`), 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	got, _ := path.Get(tr, path.ParseString("root.values"))
	want := map[string]any{"array": []any{float64(32)}, "n": float64(3), "m": float64(1)}
	if diff := cmp.Diff(want, native(t, got)); diff != "" {
		t.Errorf("shallow patch mismatch (-want +got):\n%s", diff)
	}

	tr = tree(t)
	if err := path.Patch(tr, path.ParseString("root"), types.MustUnmarshal(`{"values":{"array":[32]}}`), types.MergeUnbounded); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	got, _ = path.Get(tr, path.ParseString("root.values.array"))
	if diff := cmp.Diff([]any{1.0, 2.0, 4.0, 8.0, 16.0, 32.0}, native(t, got)); diff != "" {
		t.Errorf("deep patch mismatch (-want +got):\n%s", diff)
	}

	tr = tree(t)
	if err := path.Patch(tr, path.ParseString("test.0"), types.Number(5), 0); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	got, _ = path.Get(tr, path.ParseString("test.0"))
	if got != types.Number(5) {
		t.Errorf("got %v", got)
	}
}

func TestPatchRejectsSelfContainingValue(t *testing.T) {
	tr := tree(t)
	root, _ := path.Get(tr, path.ParseString("root"))
	err := path.Patch(tr, path.ParseString("root.values.n"), types.NewArray(root), 0)
	assertError(t, err, types.ErrCircularValue, "The value root.values.n would contain itself.")

	got, _ := path.Get(tr, path.ParseString("root.values.n"))
	if got != types.Number(3) {
		t.Errorf("value changed to %v", got)
	}
}
