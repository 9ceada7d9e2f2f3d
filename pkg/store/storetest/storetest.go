// Package storetest keeps a test suite run against every store.Store.
package storetest

import (
	"errors"
	"testing"

	"github.com/sandrolain/gojsh/pkg/store"
	"github.com/sandrolain/gojsh/pkg/types"
)

// TestStore checks the Load/Save contract of an empty store s.
func TestStore(t *testing.T, s store.Store) {
	t.Helper()

	if _, err := s.Load(); !errors.Is(err, store.ErrNoDocument) {
		t.Fatalf("Load on empty store: got %v, want ErrNoDocument", err)
	}

	doc := types.MustUnmarshal(`{"z":1,"a":{"list":[1,"two",null,true]},"m":"é\"<>"}`)
	if err := s.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !types.Equal(got, doc) {
		t.Errorf("Load returned %v, want %v", got, doc)
	}
	gotJSON, _ := types.Marshal(got)
	wantJSON, _ := types.Marshal(doc)
	if string(gotJSON) != string(wantJSON) {
		t.Errorf("key order changed: %s, want %s", gotJSON, wantJSON)
	}

	if err := s.Save(types.MustUnmarshal(`{"b":2}`)); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, err = s.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !types.Equal(got, types.MustUnmarshal(`{"b":2}`)) {
		t.Errorf("Save did not replace the document, got %v", got)
	}
}

// TestLoadOrInit checks that an empty store is initialized with {}.
func TestLoadOrInit(t *testing.T, s store.Store) {
	t.Helper()

	doc, err := store.LoadOrInit(s)
	if err != nil {
		t.Fatalf("LoadOrInit: %v", err)
	}
	if !types.Equal(doc, types.NewObject()) {
		t.Errorf("LoadOrInit on empty store returned %v", doc)
	}
	if _, err := s.Load(); err != nil {
		t.Errorf("document was not saved: %v", err)
	}
}
