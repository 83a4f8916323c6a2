package resolver

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/oracular-labs/oracular/internal/client"
	"github.com/oracular-labs/oracular/internal/core"
)

// Resolver ... Produces a numeric price value for an origin
// descriptor; a pure orchestration over external read access with no
// retry policy of its own
type Resolver struct {
	prices  client.PriceClient
	clients client.Factory
}

// NewResolver ... Initializer
func NewResolver(prices client.PriceClient, clients client.Factory) *Resolver {
	return &Resolver{
		prices:  prices,
		clients: clients,
	}
}

// Resolve ... Returns the current price for the origin as a
// fixed-point unsigned integer
func (r *Resolver) Resolve(ctx context.Context, origin core.Origin) (*big.Int, error) {
	switch origin.Type {
	case core.HttpOrigin:
		return r.resolveHttp(ctx, origin.Http)

	case core.EvmOrigin:
		return r.resolveEvm(ctx, origin.Evm)
	}

	return nil, fmt.Errorf("unknown origin type: %s", origin.Type)
}

// resolveHttp ... GET the source URL and walk the configured JSON path
func (r *Resolver) resolveHttp(ctx context.Context, cfg *core.HttpOriginConfig) (*big.Int, error) {
	body, err := r.prices.Get(ctx, cfg.URL)
	if err != nil {
		return nil, err
	}

	return ExtractPrice(body, cfg.JSONPath)
}

// resolveEvm ... Issues a read-only call with the zero-argument method
// selector and decodes the return word as an unsigned integer
func (r *Resolver) resolveEvm(ctx context.Context, cfg *core.EvmOriginConfig) (*big.Int, error) {
	ethClient, err := r.clients.GetEthClient(ctx, cfg.Provider)
	if err != nil {
		return nil, err
	}

	data := MethodSelector(cfg.Method)
	target := cfg.TargetAddress

	ret, err := ethClient.CallContract(ctx, ethereum.CallMsg{
		To:   &target,
		Data: data,
	}, nil)
	if err != nil {
		return nil, &core.JsonRpcError{Method: "eth_call", Msg: err.Error()}
	}

	if len(ret) == 0 {
		return nil, &core.JsonRpcError{Method: "eth_call", Msg: "empty return data"}
	}

	return new(big.Int).SetBytes(ret), nil
}

// MethodSelector ... Computes the 4-byte selector for a zero-argument
// method; a bare name is canonicalized to `name()`
func MethodSelector(method string) []byte {
	sig := method
	if !strings.Contains(sig, "(") {
		sig += "()"
	}

	return crypto.Keccak256([]byte(sig))[:4]
}
