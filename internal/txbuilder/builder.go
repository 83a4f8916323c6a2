package txbuilder

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/oracular-labs/oracular/internal/client"
	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/signer"
)

// DefaultGasLimit ... Fixed gas limit applied to every built transaction
const DefaultGasLimit = 30_000_000

// Builder ... Stateless orchestration producing fully signed,
// ready-to-broadcast transactions; mutates no durable state
type Builder struct {
	clients client.Factory
	signer  signer.Signer
}

// NewBuilder ... Initializer
func NewBuilder(clients client.Factory, s signer.Signer) *Builder {
	return &Builder{
		clients: clients,
		signer:  s,
	}
}

// BuildAndSign ... Queries the destination chain for the signer's
// nonce and the current gas price, assembles the envelope and requests
// a signature. Each step may fail independently and aborts the build.
func (b *Builder) BuildAndSign(ctx context.Context, destination core.ChainEndpoint,
	to *common.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	ethClient, err := b.clients.GetEthClient(ctx, destination)
	if err != nil {
		return nil, err
	}

	from := b.signer.Address()

	nonce, err := ethClient.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, &core.JsonRpcError{Method: "eth_getTransactionCount", Msg: err.Error()}
	}

	gasPrice, err := ethClient.SuggestGasPrice(ctx)
	if err != nil {
		return nil, &core.JsonRpcError{Method: "eth_gasPrice", Msg: err.Error()}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      DefaultGasLimit,
		To:       to,
		Value:    value,
		Data:     data,
	})

	chainID := new(big.Int).SetUint64(destination.ChainID)

	return b.signer.SignTx(tx, chainID)
}
