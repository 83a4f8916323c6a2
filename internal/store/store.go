package store

import (
	"errors"
)

// Durable regions; each bucket is independently addressable and
// survives restarts with identical content
var (
	SettingsBucket = []byte("settings")
	OraclesBucket  = []byte("oracles")
	PendingBucket  = []byte("pending")
	FeedsBucket    = []byte("feeds")
)

// Buckets ... All regions created on store initialization
func Buckets() [][]byte {
	return [][]byte{SettingsBucket, OraclesBucket, PendingBucket, FeedsBucket}
}

// ErrKeyNotFound ... Returned when the requested key is absent from a region
var ErrKeyNotFound = errors.New("key not found in store")

// Store ... Crash-consistent key-value storage over named regions.
// Implementations must be safe for concurrent use; callers must not
// invoke Seek callbacks that block on network calls.
type Store interface {
	Put(bucket, key, value []byte) error
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error
	Seek(bucket, prefix []byte, f func(k, v []byte) error) error
	Close() error
}
