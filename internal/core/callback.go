package core

import (
	"github.com/ethereum/go-ethereum/common"
)

// CallbackType ... Discriminates persisted transaction callback variants
type CallbackType string

const (
	FeedCreation       CallbackType = "feed_creation"
	AddressReservation CallbackType = "address_reservation"
)

// FeedCreationCallback ... Records the deployed contract address on a
// feed once its deployment transaction is mined
type FeedCreationCallback struct {
	FeedID string `json:"feed_id"`
}

// AddressReservationCallback ... Marks a signer address reservation
// confirmed once its registration transaction is mined
type AddressReservationCallback struct {
	Owner   common.Address `json:"owner"`
	Address common.Address `json:"address"`
}

// TxCallback ... Persisted tagged union holding the state needed to
// finish a unit of work when its transaction reaches a terminal state.
// Exactly one variant field is populated for the given Type; the union
// is stored as data so the registry survives restarts without having
// to serialize executable code.
type TxCallback struct {
	Type               CallbackType                `json:"type"`
	FeedCreation       *FeedCreationCallback       `json:"feed_creation,omitempty"`
	AddressReservation *AddressReservationCallback `json:"address_reservation,omitempty"`
}

// NewFeedCreationCallback ... Constructs a feed creation callback
func NewFeedCreationCallback(feedID string) TxCallback {
	return TxCallback{
		Type:         FeedCreation,
		FeedCreation: &FeedCreationCallback{FeedID: feedID},
	}
}

// NewAddressReservationCallback ... Constructs an address reservation callback
func NewAddressReservationCallback(owner, address common.Address) TxCallback {
	return TxCallback{
		Type:               AddressReservation,
		AddressReservation: &AddressReservationCallback{Owner: owner, Address: address},
	}
}
