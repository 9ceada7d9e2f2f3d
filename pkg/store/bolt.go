package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/sandrolain/gojsh/pkg/types"
)

// documentKey is the bucket key holding the serialized document.
const documentKey = "root"

// BoltStore keeps the document in a bbolt database.
type BoltStore struct {
	db     *bolt.DB
	bucket []byte
}

// OpenBolt opens or creates the database at path and makes sure bucket
// exists.
func OpenBolt(path, bucket string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	s := &BoltStore{db: db, bucket: []byte(bucket)}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize bucket %s: %w", bucket, err)
	}
	return s, nil
}

// Load implements Store.
func (s *BoltStore) Load() (types.Value, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(documentKey))
		if v == nil {
			return ErrNoDocument
		}
		// v is only valid inside the transaction
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return types.Unmarshal(data)
}

// Save implements Store.
func (s *BoltStore) Save(doc types.Value) error {
	data, err := types.Marshal(doc)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(documentKey), data)
	})
}

// Close implements Store.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
