package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandrolain/gojsh/pkg/store"
	"github.com/sandrolain/gojsh/pkg/store/storetest"
	"github.com/sandrolain/gojsh/pkg/types"
)

func TestFileStore(t *testing.T) {
	storetest.TestStore(t, store.NewFileStore(filepath.Join(t.TempDir(), "doc.json")))
}

func TestFileStoreLoadOrInit(t *testing.T) {
	p := filepath.Join(t.TempDir(), "doc.json")
	storetest.TestLoadOrInit(t, store.NewFileStore(p))
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Errorf("file content = %q", data)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(filepath.Join(dir, "doc.json"))
	for range 3 {
		if err := s.Save(types.MustUnmarshal(`{"a":1}`)); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only doc.json, got %d entries", len(entries))
	}
}

func TestFileStoreMalformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(p, []byte(`{"a":`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := store.NewFileStore(p).Load()
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestBoltStore(t *testing.T) {
	s, err := store.OpenBolt(filepath.Join(t.TempDir(), "doc.db"), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	storetest.TestStore(t, s)
}

func TestBoltStoreReopen(t *testing.T) {
	p := filepath.Join(t.TempDir(), "doc.db")
	s, err := store.OpenBolt(p, "test")
	if err != nil {
		t.Fatal(err)
	}
	storetest.TestLoadOrInit(t, s)
	if err := s.Save(types.MustUnmarshal(`{"kept":true}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = store.OpenBolt(p, "test")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	doc, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !types.Equal(doc, types.MustUnmarshal(`{"kept":true}`)) {
		t.Errorf("got %v", doc)
	}
}

func TestMemoryStore(t *testing.T) {
	storetest.TestStore(t, store.NewMemoryStore())
	storetest.TestLoadOrInit(t, store.NewMemoryStore())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		backend  string
		location string
		wantErr  bool
	}{
		{store.BackendFile, filepath.Join(dir, "a.json"), false},
		{"", filepath.Join(dir, "b.json"), false},
		{store.BackendBolt, filepath.Join(dir, "c.db"), false},
		{store.BackendMemory, "", false},
		{store.BackendFile, "", true},
		{store.BackendBolt, "", true},
		{"redis", "x", true},
	}
	for _, tt := range tests {
		t.Run(tt.backend+"/"+filepath.Base(tt.location), func(t *testing.T) {
			s, err := store.Open(tt.backend, tt.location, "")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			defer s.Close()
			if _, err := store.LoadOrInit(s); err != nil {
				t.Fatal(err)
			}
		})
	}
}
