package contract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/oracular-labs/oracular/internal/client"
	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/logging"
	"github.com/oracular-labs/oracular/internal/registry"
	"github.com/oracular-labs/oracular/internal/txbuilder"
)

// Service ... Deploys price feed contracts and registers lifecycle
// callbacks for the deployment transactions
type Service struct {
	clients client.Factory
	builder *txbuilder.Builder
	feeds   *registry.FeedRegistry
	pending *registry.PendingTxRegistry
}

// NewService ... Initializer
func NewService(clients client.Factory, builder *txbuilder.Builder,
	feeds *registry.FeedRegistry, pending *registry.PendingTxRegistry) *Service {
	return &Service{
		clients: clients,
		builder: builder,
		feeds:   feeds,
		pending: pending,
	}
}

// CreateFeed ... Persists the feed record, broadcasts the deployment
// transaction and registers a feed creation callback against the
// returned hash. The callback is registered only after broadcast
// success so that a registered hash always refers to an accepted
// transaction.
func (s *Service) CreateFeed(ctx context.Context, endpoint core.ChainEndpoint,
	feed registry.Feed) (common.Hash, error) {
	logger := logging.WithContext(ctx)

	if err := s.feeds.AddFeed(feed); err != nil {
		return common.Hash{}, err
	}

	data, err := DeployFeedData(feed.Description, feed.Decimals, feed.Version)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := s.builder.BuildAndSign(ctx, endpoint, nil, big.NewInt(0), data)
	if err != nil {
		return common.Hash{}, err
	}

	ethClient, err := s.clients.GetEthClient(ctx, endpoint)
	if err != nil {
		return common.Hash{}, err
	}

	if err := ethClient.SendTransaction(ctx, tx); err != nil {
		return common.Hash{}, &core.JsonRpcError{Method: "eth_sendRawTransaction", Msg: err.Error()}
	}

	txHash := tx.Hash()

	if err := s.pending.Register(txHash, core.NewFeedCreationCallback(feed.ID)); err != nil {
		return common.Hash{}, err
	}

	logger.Info("Broadcast feed deployment",
		zap.String(core.FeedKey, feed.ID),
		zap.String(core.TxHashKey, txHash.Hex()))

	return txHash, nil
}
