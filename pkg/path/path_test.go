package path_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sandrolain/gojsh/pkg/path"
	"github.com/sandrolain/gojsh/pkg/types"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a", []string{"a"}},
		{"a.b.c", []string{"a", "b", "c"}},
		{"", []string{""}},
		{"a.", []string{"a", ""}},
		{".a", []string{"", "a"}},
		{`a\.b.c`, []string{"a.b", "c"}},
		{`a\\.b`, []string{`a\`, "b"}},
		{`a\`, []string{"a"}},
		{"list.-1", []string{"list", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, path.ParseString(tt.in)); diff != "" {
				t.Errorf("ParseString(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	got, err := path.Parse(types.MustUnmarshal(`["a", 1, true, null]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "1", "true", "null"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		in   types.Value
		code types.ErrorCode
		msg  string
	}{
		{types.NewArray(), types.ErrEmptyPath, "Path cannot be an empty array."},
		{types.Number(1), types.ErrPathType, "Path is not of the type string or array."},
		{types.NewObject(), types.ErrPathType, "Path is not of the type string or array."},
	}
	for _, tt := range tests {
		_, err := path.Parse(tt.in)
		assertError(t, err, tt.code, tt.msg)
	}
}

func TestJoin(t *testing.T) {
	segs := []string{"a.b", `c\`, "", "d"}
	joined := path.Join(segs)
	if joined != `a\.b.c\\..d` {
		t.Errorf("Join() = %q", joined)
	}
	if diff := cmp.Diff(segs, path.ParseString(joined)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func assertError(t *testing.T, err error, code types.ErrorCode, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %s %q, got nil", code, msg)
	}
	je, ok := err.(*types.Error)
	if !ok {
		t.Fatalf("expected *types.Error, got %T: %v", err, err)
	}
	if je.Code != code || je.Message != msg {
		t.Errorf("got %s %q, want %s %q", je.Code, je.Message, code, msg)
	}
}
