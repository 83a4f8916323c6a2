package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/store"
)

// PendingEntry ... A broadcast transaction awaiting a terminal
// on-chain outcome, paired with its persisted callback
type PendingEntry struct {
	TxHash   common.Hash
	Callback core.TxCallback
}

// PendingTxRegistry ... Durable map of transaction hash to callback.
// A hash appears at most once; extraction removes the entry so a
// second resolution attempt for the same hash is a no-op.
type PendingTxRegistry struct {
	mu sync.Mutex
	db store.Store
}

// NewPendingTxRegistry ... Initializer
func NewPendingTxRegistry(db store.Store) *PendingTxRegistry {
	return &PendingTxRegistry{db: db}
}

// Register ... Records a callback for a freshly broadcast transaction
func (pr *PendingTxRegistry) Register(txHash common.Hash, cb core.TxCallback) error {
	raw, err := json.Marshal(cb)
	if err != nil {
		return fmt.Errorf("could not encode tx callback: %w", err)
	}

	pr.mu.Lock()
	defer pr.mu.Unlock()

	return pr.db.Put(store.PendingBucket, txHash.Bytes(), raw)
}

// Extract ... Atomically removes and returns the callback for a hash;
// the boolean is false when the hash is no longer registered
func (pr *PendingTxRegistry) Extract(txHash common.Hash) (core.TxCallback, bool, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	raw, err := pr.db.Get(store.PendingBucket, txHash.Bytes())
	if errors.Is(err, store.ErrKeyNotFound) {
		return core.TxCallback{}, false, nil
	}
	if err != nil {
		return core.TxCallback{}, false, err
	}

	var cb core.TxCallback
	if err := json.Unmarshal(raw, &cb); err != nil {
		return core.TxCallback{}, false, fmt.Errorf("could not decode tx callback: %w", err)
	}

	if err := pr.db.Delete(store.PendingBucket, txHash.Bytes()); err != nil {
		return core.TxCallback{}, false, err
	}

	return cb, true, nil
}

// List ... Snapshots all currently registered (hash, callback) pairs
func (pr *PendingTxRegistry) List() ([]PendingEntry, error) {
	var entries []PendingEntry

	err := pr.db.Seek(store.PendingBucket, nil, func(k, v []byte) error {
		var cb core.TxCallback
		if err := json.Unmarshal(v, &cb); err != nil {
			return fmt.Errorf("could not decode tx callback: %w", err)
		}

		entries = append(entries, PendingEntry{
			TxHash:   common.BytesToHash(k),
			Callback: cb,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Clear ... Drops all registered callbacks
func (pr *PendingTxRegistry) Clear() error {
	entries, err := pr.List()
	if err != nil {
		return err
	}

	pr.mu.Lock()
	defer pr.mu.Unlock()

	for _, entry := range entries {
		if err := pr.db.Delete(store.PendingBucket, entry.TxHash.Bytes()); err != nil {
			return err
		}
	}

	return nil
}
