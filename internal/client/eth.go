//go:generate mockgen -package mocks --destination ../mocks/eth_client.go . EthClient

package client

/*
	NOTE
	eth client docs: https://pkg.go.dev/github.com/ethereum/go-ethereum/ethclient
*/

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/oracular-labs/oracular/internal/core"
)

// EthClient ... Provides interface wrapper for ethClient functions
// Useful for mocking go-ethereum json rpc client logic
type EthClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// NewEthClient ... Initializer
func NewEthClient(ctx context.Context, rawURL string) (EthClient, error) {
	return ethclient.DialContext(ctx, rawURL)
}

// Factory ... Hands out eth clients for chain endpoints; injected into
// the scheduler and processor so tests can substitute mocks
type Factory interface {
	GetEthClient(ctx context.Context, endpoint core.ChainEndpoint) (EthClient, error)
}

// factory ... Dial-once factory caching clients per hostname
type factory struct {
	mu      sync.Mutex
	clients map[string]EthClient
}

// NewFactory ... Initializer
func NewFactory() Factory {
	return &factory{clients: make(map[string]EthClient)}
}

// GetEthClient ... Returns a cached client for the endpoint hostname,
// dialing on first use
func (f *factory) GetEthClient(ctx context.Context, endpoint core.ChainEndpoint) (EthClient, error) {
	f.mu.Lock()
	if client, exists := f.clients[endpoint.Hostname]; exists {
		f.mu.Unlock()
		return client, nil
	}
	f.mu.Unlock()

	// Dial outside of the lock; a concurrent dial for the same
	// hostname is harmless and the last one wins
	client, err := NewEthClient(ctx, endpoint.Hostname)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.clients[endpoint.Hostname] = client
	f.mu.Unlock()

	return client, nil
}
