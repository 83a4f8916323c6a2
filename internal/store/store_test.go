package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oracular-labs/oracular/internal/store"
)

// stores ... Both Store implementations run the same behavioural suite
func stores(t *testing.T) map[string]store.Store {
	t.Helper()

	boltPath := filepath.Join(t.TempDir(), "oracular.db")
	boltStore, err := store.NewBoltStore(store.BoltOptions{FilePath: boltPath})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = boltStore.Close()
	})

	return map[string]store.Store{
		"memory": store.NewMemoryStore(),
		"boltdb": boltStore,
	}
}

func Test_Store_PutGetDelete(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			key := []byte("alpha")
			value := []byte("first")

			_, err := s.Get(store.OraclesBucket, key)
			assert.ErrorIs(t, err, store.ErrKeyNotFound)

			assert.NoError(t, s.Put(store.OraclesBucket, key, value))

			got, err := s.Get(store.OraclesBucket, key)
			assert.NoError(t, err)
			assert.Equal(t, value, got)

			// Overwrites replace
			assert.NoError(t, s.Put(store.OraclesBucket, key, []byte("second")))
			got, err = s.Get(store.OraclesBucket, key)
			assert.NoError(t, err)
			assert.Equal(t, []byte("second"), got)

			assert.NoError(t, s.Delete(store.OraclesBucket, key))
			_, err = s.Get(store.OraclesBucket, key)
			assert.ErrorIs(t, err, store.ErrKeyNotFound)

			// Deleting an absent key is a no-op
			assert.NoError(t, s.Delete(store.OraclesBucket, key))
		})
	}
}

func Test_Store_BucketsAreIsolated(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			key := []byte("shared-key")

			assert.NoError(t, s.Put(store.OraclesBucket, key, []byte("oracle")))
			assert.NoError(t, s.Put(store.PendingBucket, key, []byte("pending")))

			got, err := s.Get(store.OraclesBucket, key)
			assert.NoError(t, err)
			assert.Equal(t, []byte("oracle"), got)

			assert.NoError(t, s.Delete(store.OraclesBucket, key))

			got, err = s.Get(store.PendingBucket, key)
			assert.NoError(t, err)
			assert.Equal(t, []byte("pending"), got)
		})
	}
}

func Test_Store_SeekPrefix(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, s.Put(store.FeedsBucket, []byte("feed/btc"), []byte("1")))
			assert.NoError(t, s.Put(store.FeedsBucket, []byte("feed/eth"), []byte("2")))
			assert.NoError(t, s.Put(store.FeedsBucket, []byte("rsv/0xabc"), []byte("3")))

			seen := make(map[string]string)
			err := s.Seek(store.FeedsBucket, []byte("feed/"), func(k, v []byte) error {
				seen[string(k)] = string(v)
				return nil
			})

			assert.NoError(t, err)
			assert.Equal(t, map[string]string{
				"feed/btc": "1",
				"feed/eth": "2",
			}, seen)
		})
	}
}

func Test_BoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oracular.db")

	s, err := store.NewBoltStore(store.BoltOptions{FilePath: path})
	require.NoError(t, err)

	require.NoError(t, s.Put(store.SettingsBucket, []byte("owner"), []byte("0xowner")))
	require.NoError(t, s.Close())

	s, err = store.NewBoltStore(store.BoltOptions{FilePath: path})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(store.SettingsBucket, []byte("owner"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("0xowner"), got)
}
