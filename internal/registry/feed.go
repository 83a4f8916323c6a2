package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/store"
)

const (
	feedPrefix        = "feed/"
	reservationPrefix = "rsv/"
)

// Feed ... Durable record describing a deployed price feed contract.
// Contract stays nil until the deployment transaction is processed.
type Feed struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Decimals    uint8           `json:"decimals"`
	Version     uint64          `json:"version"`
	Contract    *common.Address `json:"contract,omitempty"`
}

// ReservationStatus ... State of a signer address reservation
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
)

// Reservation ... A signer address held for an owner until its
// registration transaction resolves
type Reservation struct {
	Owner   common.Address    `json:"owner"`
	Address common.Address    `json:"address"`
	Status  ReservationStatus `json:"status"`
}

// FeedRegistry ... Durable store of price feed records and signer
// address reservations
type FeedRegistry struct {
	mu sync.Mutex
	db store.Store
}

// NewFeedRegistry ... Initializer
func NewFeedRegistry(db store.Store) *FeedRegistry {
	return &FeedRegistry{db: db}
}

func feedKey(id string) []byte {
	return []byte(feedPrefix + id)
}

func reservationKey(owner, address common.Address) []byte {
	return []byte(reservationPrefix + strings.ToLower(owner.Hex()) + "/" + strings.ToLower(address.Hex()))
}

// AddFeed ... Persists a new feed record without a contract address
func (fr *FeedRegistry) AddFeed(feed Feed) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	if _, err := fr.db.Get(store.FeedsBucket, feedKey(feed.ID)); err == nil {
		return core.ErrFeedAlreadyExists
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		return err
	}

	return fr.put(feed)
}

// GetFeed ... Fetches a feed record by id
func (fr *FeedRegistry) GetFeed(id string) (Feed, error) {
	raw, err := fr.db.Get(store.FeedsBucket, feedKey(id))
	if errors.Is(err, store.ErrKeyNotFound) {
		return Feed{}, core.ErrFeedNotFound
	}
	if err != nil {
		return Feed{}, err
	}

	var feed Feed
	if err := json.Unmarshal(raw, &feed); err != nil {
		return Feed{}, fmt.Errorf("could not decode feed: %w", err)
	}

	return feed, nil
}

// SetFeedAddress ... Records the deployed contract address on a feed
func (fr *FeedRegistry) SetFeedAddress(id string, contract common.Address) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	feed, err := fr.GetFeed(id)
	if err != nil {
		return err
	}

	feed.Contract = &contract
	return fr.put(feed)
}

// ListFeeds ... Returns all feed records
func (fr *FeedRegistry) ListFeeds() ([]Feed, error) {
	var feeds []Feed

	err := fr.db.Seek(store.FeedsBucket, []byte(feedPrefix), func(_, v []byte) error {
		var feed Feed
		if err := json.Unmarshal(v, &feed); err != nil {
			return fmt.Errorf("could not decode feed: %w", err)
		}

		feeds = append(feeds, feed)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return feeds, nil
}

// RemoveFeed ... Deletes a feed record
func (fr *FeedRegistry) RemoveFeed(id string) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	if _, err := fr.GetFeed(id); err != nil {
		return err
	}

	return fr.db.Delete(store.FeedsBucket, feedKey(id))
}

// Reserve ... Holds a signer address for an owner while its
// registration transaction is in flight
func (fr *FeedRegistry) Reserve(owner, address common.Address) error {
	raw, err := json.Marshal(Reservation{Owner: owner, Address: address, Status: ReservationPending})
	if err != nil {
		return fmt.Errorf("could not encode reservation: %w", err)
	}

	fr.mu.Lock()
	defer fr.mu.Unlock()

	return fr.db.Put(store.FeedsBucket, reservationKey(owner, address), raw)
}

// ConfirmReservation ... Marks a reservation confirmed
func (fr *FeedRegistry) ConfirmReservation(owner, address common.Address) error {
	raw, err := json.Marshal(Reservation{Owner: owner, Address: address, Status: ReservationConfirmed})
	if err != nil {
		return fmt.Errorf("could not encode reservation: %w", err)
	}

	fr.mu.Lock()
	defer fr.mu.Unlock()

	return fr.db.Put(store.FeedsBucket, reservationKey(owner, address), raw)
}

// ReleaseReservation ... Drops a reservation whose transaction was skipped
func (fr *FeedRegistry) ReleaseReservation(owner, address common.Address) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	return fr.db.Delete(store.FeedsBucket, reservationKey(owner, address))
}

// GetReservation ... Fetches a reservation, if any
func (fr *FeedRegistry) GetReservation(owner, address common.Address) (Reservation, bool, error) {
	raw, err := fr.db.Get(store.FeedsBucket, reservationKey(owner, address))
	if errors.Is(err, store.ErrKeyNotFound) {
		return Reservation{}, false, nil
	}
	if err != nil {
		return Reservation{}, false, err
	}

	var rsv Reservation
	if err := json.Unmarshal(raw, &rsv); err != nil {
		return Reservation{}, false, fmt.Errorf("could not decode reservation: %w", err)
	}

	return rsv, true, nil
}

func (fr *FeedRegistry) put(feed Feed) error {
	raw, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("could not encode feed: %w", err)
	}

	return fr.db.Put(store.FeedsBucket, feedKey(feed.ID), raw)
}
