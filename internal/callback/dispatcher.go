package callback

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/logging"
	"github.com/oracular-labs/oracular/internal/registry"
)

// Dispatcher ... Pattern-matches persisted callback variants and runs
// the matching terminal action against the durable registries. The
// union carries data rather than code so dispatch stays restart-safe.
type Dispatcher struct {
	feeds *registry.FeedRegistry
}

// NewDispatcher ... Initializer
func NewDispatcher(feeds *registry.FeedRegistry) *Dispatcher {
	return &Dispatcher{feeds: feeds}
}

// Processed ... Runs the callback's action for a mined transaction
func (d *Dispatcher) Processed(ctx context.Context, cb core.TxCallback, receipt *types.Receipt) {
	logger := logging.WithContext(ctx)

	switch cb.Type {
	case core.FeedCreation:
		if cb.FeedCreation == nil {
			logger.Warn("Callback record is missing its variant payload",
				zap.String("type", string(cb.Type)))
			return
		}
		if err := d.feeds.SetFeedAddress(cb.FeedCreation.FeedID, receipt.ContractAddress); err != nil {
			logger.Error("Could not record deployed feed address",
				zap.String(core.FeedKey, cb.FeedCreation.FeedID), zap.Error(err))
			return
		}

		logger.Info("Recorded deployed feed contract",
			zap.String(core.FeedKey, cb.FeedCreation.FeedID),
			zap.String(core.ContractKey, receipt.ContractAddress.Hex()))

	case core.AddressReservation:
		rsv := cb.AddressReservation
		if rsv == nil {
			logger.Warn("Callback record is missing its variant payload",
				zap.String("type", string(cb.Type)))
			return
		}
		if err := d.feeds.ConfirmReservation(rsv.Owner, rsv.Address); err != nil {
			logger.Error("Could not confirm address reservation",
				zap.String(core.OwnerKey, rsv.Owner.Hex()), zap.Error(err))
		}

	default:
		logger.Warn("Unknown callback variant", zap.String("type", string(cb.Type)))
	}
}

// Skipped ... Runs the callback's action for a definitively dropped
// transaction
func (d *Dispatcher) Skipped(ctx context.Context, cb core.TxCallback) {
	logger := logging.WithContext(ctx)

	switch cb.Type {
	case core.FeedCreation:
		if cb.FeedCreation == nil {
			logger.Warn("Callback record is missing its variant payload",
				zap.String("type", string(cb.Type)))
			return
		}
		// Deployment never made it on-chain; the feed keeps no address
		// and a new deployment may be attempted
		logger.Warn("Feed deployment transaction was skipped",
			zap.String(core.FeedKey, cb.FeedCreation.FeedID))

	case core.AddressReservation:
		rsv := cb.AddressReservation
		if rsv == nil {
			logger.Warn("Callback record is missing its variant payload",
				zap.String("type", string(cb.Type)))
			return
		}
		if err := d.feeds.ReleaseReservation(rsv.Owner, rsv.Address); err != nil {
			logger.Error("Could not release address reservation",
				zap.String(core.OwnerKey, rsv.Owner.Hex()), zap.Error(err))
		}

	default:
		logger.Warn("Unknown callback variant", zap.String("type", string(cb.Type)))
	}
}
