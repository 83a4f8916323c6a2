package store

import (
	"bytes"
	"fmt"
	"os"
	"path"

	bolt "go.etcd.io/bbolt"
)

// BoltOptions ... Configuration for the bbolt backed store
type BoltOptions struct {
	FilePath string
}

// BoltStore ... Durable storage implementation backed by a single
// bbolt file with one bucket per region
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore ... Opens (or creates) the bbolt file and ensures all
// region buckets exist
func NewBoltStore(opts BoltOptions) (*BoltStore, error) {
	if err := os.MkdirAll(path.Dir(opts.FilePath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not create dir for bolt store: %w", err)
	}

	db, err := bolt.Open(opts.FilePath, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range Buckets() {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("could not create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Put ... Implements the Store interface
func (s *BoltStore) Put(bucket, key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, value)
	})
}

// Get ... Implements the Store interface
func (s *BoltStore) Get(bucket, key []byte) ([]byte, error) {
	var val []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucket).Get(key); v != nil {
			val = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if val == nil {
		return nil, ErrKeyNotFound
	}

	return val, nil
}

// Delete ... Implements the Store interface; deleting an absent key is a no-op
func (s *BoltStore) Delete(bucket, key []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete(key)
	})
}

// Seek ... Implements the Store interface; iterates all keys sharing
// the given prefix in lexical order
func (s *BoltStore) Seek(bucket, prefix []byte, f func(k, v []byte) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucket).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			if err := f(k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close ... Releases all db resources
func (s *BoltStore) Close() error {
	return s.db.Close()
}
