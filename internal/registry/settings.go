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

var settingsKey = []byte("settings")

// ErrSettingsUninitialized ... The settings cell has never been written
var ErrSettingsUninitialized = errors.New("settings cell is uninitialized")

// Settings ... Single durable cell holding process-level configuration
type Settings struct {
	Owner       common.Address `json:"owner"`
	EvmChainID  uint64         `json:"evm_chain_id"`
	EvmHostname string         `json:"evm_hostname"`
}

// SettingsRegistry ... Accessor for the settings cell
type SettingsRegistry struct {
	mu sync.Mutex
	db store.Store
}

// NewSettingsRegistry ... Initializer
func NewSettingsRegistry(db store.Store) *SettingsRegistry {
	return &SettingsRegistry{db: db}
}

// Init ... Seeds the settings cell on first boot; an anonymous owner
// is a startup abort condition, surfaced as an error to the caller.
// An already-initialized cell keeps its stored owner so ownership
// transfers survive restarts; only the endpoint fields are refreshed.
func (sr *SettingsRegistry) Init(settings Settings) error {
	if settings.Owner == core.ZeroAddress {
		return core.ErrAnonymousOwner
	}

	sr.mu.Lock()
	defer sr.mu.Unlock()

	current, err := sr.Get()
	if errors.Is(err, ErrSettingsUninitialized) {
		return sr.write(settings)
	}
	if err != nil {
		return err
	}

	current.EvmChainID = settings.EvmChainID
	current.EvmHostname = settings.EvmHostname
	return sr.write(current)
}

// Get ... Reads the settings cell
func (sr *SettingsRegistry) Get() (Settings, error) {
	raw, err := sr.db.Get(store.SettingsBucket, settingsKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return Settings{}, ErrSettingsUninitialized
	}
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("could not decode settings: %w", err)
	}

	return settings, nil
}

// Owner ... Returns the current service owner
func (sr *SettingsRegistry) Owner() (common.Address, error) {
	settings, err := sr.Get()
	if err != nil {
		return common.Address{}, err
	}

	return settings.Owner, nil
}

// SetOwner ... Transfers service ownership; only the current owner may
// call and the new owner must not be anonymous
func (sr *SettingsRegistry) SetOwner(caller, owner common.Address) error {
	if owner == core.ZeroAddress {
		return core.ErrAnonymousOwner
	}

	sr.mu.Lock()
	defer sr.mu.Unlock()

	settings, err := sr.Get()
	if err != nil {
		return err
	}

	if settings.Owner != caller {
		return core.ErrNotOwner
	}

	settings.Owner = owner
	return sr.write(settings)
}

func (sr *SettingsRegistry) write(settings Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}

	return sr.db.Put(store.SettingsBucket, settingsKey, raw)
}
