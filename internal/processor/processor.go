package processor

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/oracular-labs/oracular/internal/client"
	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/logging"
	"github.com/oracular-labs/oracular/internal/metrics"
	"github.com/oracular-labs/oracular/internal/registry"
)

// Dispatcher ... Invokes the persisted callback matching a terminal
// transaction outcome; injected so tests can observe dispatches
type Dispatcher interface {
	Processed(ctx context.Context, cb core.TxCallback, receipt *types.Receipt)
	Skipped(ctx context.Context, cb core.TxCallback)
}

// txStatus ... State of a tracked transaction on the destination chain
type txStatus uint8

const (
	// statusUnknown ... Still in pool, no receipt yet, or the query failed
	statusUnknown txStatus = iota
	// statusSkipped ... Absent from both pool and chain; definitively dropped
	statusSkipped
	// statusProcessed ... Mined with an obtainable receipt
	statusProcessed
)

// probeResult ... Outcome of one status query
type probeResult struct {
	txHash  common.Hash
	status  txStatus
	receipt *types.Receipt
}

// Processor ... Polls the status of all registered pending
// transactions on its own recurring timer and dispatches each callback
// exactly once when its transaction reaches a terminal state
type Processor struct {
	interval time.Duration
	endpoint core.ChainEndpoint

	pending    *registry.PendingTxRegistry
	clients    client.Factory
	dispatcher Dispatcher
	stats      metrics.Metricer
}

// NewProcessor ... Initializer
func NewProcessor(interval time.Duration, endpoint core.ChainEndpoint,
	pending *registry.PendingTxRegistry, clients client.Factory,
	dispatcher Dispatcher, stats metrics.Metricer) *Processor {
	return &Processor{
		interval:   interval,
		endpoint:   endpoint,
		pending:    pending,
		clients:    clients,
		dispatcher: dispatcher,
		stats:      stats,
	}
}

// EventLoop ... Runs processing rounds until the context is cancelled
func (p *Processor) EventLoop(ctx context.Context) error {
	logger := logging.WithContext(ctx)
	logger.Debug("Starting transaction processor event loop")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.ProcessTransactions(ctx)

		case <-ctx.Done():
			logger.Debug("Transaction processor received shutdown signal")
			return nil
		}
	}
}

// ProcessTransactions ... Runs one processing round: snapshot all
// registered (hash, callback) pairs, query every status concurrently
// and act on results as each lands. A terminal result extracts the
// callback before invoking it, so a callback can fire at most once; a
// second resolution for the same hash finds nothing to extract.
func (p *Processor) ProcessTransactions(ctx context.Context) {
	logger := logging.WithContext(ctx)

	snapshot, err := p.pending.List()
	if err != nil {
		logger.Error("Could not snapshot pending transactions", zap.Error(err))
		return
	}

	p.stats.SetPendingTransactions(len(snapshot))

	if len(snapshot) == 0 {
		return
	}

	results := make(chan probeResult, len(snapshot))

	for _, entry := range snapshot {
		go func(txHash common.Hash) {
			results <- p.probe(ctx, txHash)
		}(entry.TxHash)
	}

	// Fan-in as results land; no waiting for the slowest query before
	// acting on finished ones
	for i := 0; i < len(snapshot); i++ {
		res := <-results

		switch res.status {
		case statusUnknown:
			// Entry remains registered for the next round

		case statusSkipped:
			cb, exists, err := p.pending.Extract(res.txHash)
			if err != nil {
				logger.Error("Could not extract callback",
					zap.String(core.TxHashKey, res.txHash.Hex()), zap.Error(err))
				continue
			}
			if !exists {
				continue
			}

			p.dispatcher.Skipped(ctx, cb)
			p.stats.RecordCallbackDispatch(string(cb.Type), "skipped")

			logger.Info("Transaction skipped",
				zap.String(core.TxHashKey, res.txHash.Hex()))

		case statusProcessed:
			cb, exists, err := p.pending.Extract(res.txHash)
			if err != nil {
				logger.Error("Could not extract callback",
					zap.String(core.TxHashKey, res.txHash.Hex()), zap.Error(err))
				continue
			}
			if !exists {
				continue
			}

			p.dispatcher.Processed(ctx, cb, res.receipt)
			p.stats.RecordCallbackDispatch(string(cb.Type), "processed")

			logger.Info("Transaction processed",
				zap.String(core.TxHashKey, res.txHash.Hex()))
		}
	}
}

// probe ... Queries the destination chain for a transaction's status.
// A hash only enters the registry after broadcast success, so "not
// found at all" implies definitive loss rather than propagation delay.
func (p *Processor) probe(ctx context.Context, txHash common.Hash) probeResult {
	ethClient, err := p.clients.GetEthClient(ctx, p.endpoint)
	if err != nil {
		return probeResult{txHash: txHash, status: statusUnknown}
	}

	_, _, err = ethClient.TransactionByHash(ctx, txHash)
	if errors.Is(err, ethereum.NotFound) {
		return probeResult{txHash: txHash, status: statusSkipped}
	}
	if err != nil {
		// Transient query failure; retry next round
		return probeResult{txHash: txHash, status: statusUnknown}
	}

	receipt, err := ethClient.TransactionReceipt(ctx, txHash)
	if err != nil || receipt == nil {
		// Present in pool or chain but no receipt yet
		return probeResult{txHash: txHash, status: statusUnknown}
	}

	return probeResult{txHash: txHash, status: statusProcessed, receipt: receipt}
}
