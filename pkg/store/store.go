// Package store persists the JSH root document between runs.
//
// Three backends are available: a JSON file (the default), a bbolt
// database and an in-process buffer used by tests. All of them hold a
// single document that is loaded at startup and written back after every
// mutating request.
package store

import (
	"errors"
	"fmt"

	"github.com/sandrolain/gojsh/pkg/types"
)

// ErrNoDocument is returned by Load when nothing has been saved yet.
var ErrNoDocument = errors.New("no document stored")

// Store holds one JSON document.
type Store interface {
	// Load returns the stored document or ErrNoDocument.
	Load() (types.Value, error)
	// Save replaces the stored document.
	Save(doc types.Value) error
	// Close releases the resources held by the store.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// DefaultBucket is the bbolt bucket used when none is configured.
const DefaultBucket = "jsh"

// Open creates the store for backend. location is the file path for the
// file and bolt backends and is ignored by the memory backend.
func Open(backend, location, bucket string) (Store, error) {
	switch backend {
	case BackendFile, "":
		if location == "" {
			return nil, errors.New("file store needs a path")
		}
		return NewFileStore(location), nil
	case BackendBolt:
		if location == "" {
			return nil, errors.New("bolt store needs a path")
		}
		if bucket == "" {
			bucket = DefaultBucket
		}
		return OpenBolt(location, bucket)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// LoadOrInit loads the document of s. When nothing is stored yet it saves
// an empty object and loads it back.
func LoadOrInit(s Store) (types.Value, error) {
	doc, err := s.Load()
	if !errors.Is(err, ErrNoDocument) {
		return doc, err
	}
	if err := s.Save(types.NewObject()); err != nil {
		return nil, err
	}
	return s.Load()
}
