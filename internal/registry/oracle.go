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

// OracleRegistry ... Durable store of oracle metadata keyed by
// (owner, destination contract); at most one record per key
type OracleRegistry struct {
	mu sync.Mutex
	db store.Store
}

// NewOracleRegistry ... Initializer
func NewOracleRegistry(db store.Store) *OracleRegistry {
	return &OracleRegistry{db: db}
}

// oracleKey ... owner bytes followed by contract bytes
func oracleKey(owner, contract common.Address) []byte {
	key := make([]byte, 0, 2*common.AddressLength)
	key = append(key, owner.Bytes()...)
	return append(key, contract.Bytes()...)
}

// Add ... Persists a new oracle; rejects duplicates for the same
// (owner, contract) pair
func (or *OracleRegistry) Add(md core.OracleMetadata) error {
	or.mu.Lock()
	defer or.mu.Unlock()

	key := oracleKey(md.Owner, md.Evm.Contract)

	if _, err := or.db.Get(store.OraclesBucket, key); err == nil {
		return core.ErrOracleAlreadyExists
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		return err
	}

	return or.put(key, md)
}

// Get ... Fetches the metadata stored for (owner, contract)
func (or *OracleRegistry) Get(owner, contract common.Address) (core.OracleMetadata, error) {
	raw, err := or.db.Get(store.OraclesBucket, oracleKey(owner, contract))
	if errors.Is(err, store.ErrKeyNotFound) {
		return core.OracleMetadata{}, core.ErrOracleNotFound
	}
	if err != nil {
		return core.OracleMetadata{}, err
	}

	var md core.OracleMetadata
	if err := json.Unmarshal(raw, &md); err != nil {
		return core.OracleMetadata{}, fmt.Errorf("could not decode oracle metadata: %w", err)
	}

	return md, nil
}

// Update ... Applies a partial patch and the re-armed schedule handle
// to an existing record; unspecified fields are preserved
func (or *OracleRegistry) Update(owner, contract common.Address,
	patch *core.UpdateOracleMetadata, handle string) (core.OracleMetadata, error) {
	or.mu.Lock()
	defer or.mu.Unlock()

	md, err := or.Get(owner, contract)
	if err != nil {
		return core.OracleMetadata{}, err
	}

	if patch.Origin != nil {
		md.Origin = *patch.Origin
	}
	if patch.TimerInterval != nil {
		md.TimerInterval = *patch.TimerInterval
	}
	if patch.Evm != nil {
		md.Evm = *patch.Evm
	}
	md.ScheduleHandle = handle

	if err := or.put(oracleKey(owner, contract), md); err != nil {
		return core.OracleMetadata{}, err
	}

	return md, nil
}

// SetHandle ... Rewrites only the schedule handle; used when timers are
// re-armed on process start
func (or *OracleRegistry) SetHandle(owner, contract common.Address, handle string) error {
	or.mu.Lock()
	defer or.mu.Unlock()

	md, err := or.Get(owner, contract)
	if err != nil {
		return err
	}

	md.ScheduleHandle = handle
	return or.put(oracleKey(owner, contract), md)
}

// Remove ... Deletes the record for (owner, contract)
func (or *OracleRegistry) Remove(owner, contract common.Address) error {
	or.mu.Lock()
	defer or.mu.Unlock()

	if _, err := or.Get(owner, contract); err != nil {
		return err
	}

	return or.db.Delete(store.OraclesBucket, oracleKey(owner, contract))
}

// GetUserOracles ... Returns all (contract, metadata) pairs for an owner
func (or *OracleRegistry) GetUserOracles(owner common.Address) ([]core.OracleMetadata, error) {
	var entries []core.OracleMetadata

	err := or.db.Seek(store.OraclesBucket, owner.Bytes(), func(_, v []byte) error {
		var md core.OracleMetadata
		if err := json.Unmarshal(v, &md); err != nil {
			return fmt.Errorf("could not decode oracle metadata: %w", err)
		}

		entries = append(entries, md)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, core.ErrUserNotFound
	}

	return entries, nil
}

// OracleEntry ... A stored oracle paired with its immutable registry
// key. The key is fixed at creation; a metadata patch may point
// Evm.Contract elsewhere without re-keying the record.
type OracleEntry struct {
	Key      core.OracleKey
	Metadata core.OracleMetadata
}

// Entries ... Returns every stored oracle with its registry key
func (or *OracleRegistry) Entries() ([]OracleEntry, error) {
	var entries []OracleEntry

	err := or.db.Seek(store.OraclesBucket, nil, func(k, v []byte) error {
		if len(k) != 2*common.AddressLength {
			return fmt.Errorf("malformed oracle key: %d bytes", len(k))
		}

		var md core.OracleMetadata
		if err := json.Unmarshal(v, &md); err != nil {
			return fmt.Errorf("could not decode oracle metadata: %w", err)
		}

		entries = append(entries, OracleEntry{
			Key: core.OracleKey{
				Owner:    common.BytesToAddress(k[:common.AddressLength]),
				Contract: common.BytesToAddress(k[common.AddressLength:]),
			},
			Metadata: md,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// GetAll ... Returns every stored oracle grouped by owner
func (or *OracleRegistry) GetAll() (map[common.Address][]core.OracleMetadata, error) {
	all := make(map[common.Address][]core.OracleMetadata)

	err := or.db.Seek(store.OraclesBucket, nil, func(_, v []byte) error {
		var md core.OracleMetadata
		if err := json.Unmarshal(v, &md); err != nil {
			return fmt.Errorf("could not decode oracle metadata: %w", err)
		}

		all[md.Owner] = append(all[md.Owner], md)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return all, nil
}

func (or *OracleRegistry) put(key []byte, md core.OracleMetadata) error {
	raw, err := json.Marshal(md)
	if err != nil {
		return fmt.Errorf("could not encode oracle metadata: %w", err)
	}

	return or.db.Put(store.OraclesBucket, key, raw)
}
