package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oracular-labs/oracular/internal/client"
	"github.com/oracular-labs/oracular/internal/contract"
	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/logging"
	"github.com/oracular-labs/oracular/internal/metrics"
	"github.com/oracular-labs/oracular/internal/registry"
	"github.com/oracular-labs/oracular/internal/resolver"
	"github.com/oracular-labs/oracular/internal/txbuilder"
)

// tickTimeout ... Bound on a single fetch-sign-submit cycle
const tickTimeout = 60 * time.Second

// task ... An armed recurring timer for one oracle
type task struct {
	handle string
	stop   chan struct{}
}

// Option ... Scheduler constructor option
type Option func(*Scheduler)

// WithTickUnit ... Overrides the duration represented by one interval
// second; used by tests to compress time
func WithTickUnit(unit time.Duration) Option {
	return func(s *Scheduler) {
		s.tickUnit = unit
	}
}

// Scheduler ... Owns one recurring timer per active oracle and drives
// each oracle's fetch-sign-submit cycle. All collaborators are
// injected at construction; timer state lives in-process while oracle
// metadata lives in the durable registry.
type Scheduler struct {
	ctx context.Context

	mu    sync.Mutex
	tasks map[core.OracleKey]*task
	wg    sync.WaitGroup

	oracles  *registry.OracleRegistry
	resolver *resolver.Resolver
	builder  *txbuilder.Builder
	clients  client.Factory
	stats    metrics.Metricer

	tickUnit time.Duration
}

// NewScheduler ... Initializer
func NewScheduler(ctx context.Context, oracles *registry.OracleRegistry,
	r *resolver.Resolver, builder *txbuilder.Builder, clients client.Factory,
	stats metrics.Metricer, opts ...Option) *Scheduler {
	s := &Scheduler{
		ctx:      ctx,
		tasks:    make(map[core.OracleKey]*task),
		oracles:  oracles,
		resolver: r,
		builder:  builder,
		clients:  clients,
		stats:    stats,
		tickUnit: time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start ... Re-arms a timer for every stored oracle. Timer handles are
// not durable across restarts, so each oracle gets a fresh handle
// persisted in its metadata.
func (s *Scheduler) Start(ctx context.Context) error {
	entries, err := s.oracles.Entries()
	if err != nil {
		return err
	}

	logger := logging.WithContext(ctx)

	for _, entry := range entries {
		handle := uuid.NewString()
		if err := s.oracles.SetHandle(entry.Key.Owner, entry.Key.Contract, handle); err != nil {
			return err
		}

		md := entry.Metadata
		md.ScheduleHandle = handle
		s.arm(entry.Key, md)

		logger.Info("Re-armed oracle timer",
			zap.String(core.OwnerKey, entry.Key.Owner.Hex()),
			zap.String(core.ContractKey, entry.Key.Contract.Hex()),
			zap.String(core.HandleKey, handle))
	}

	return nil
}

// Stop ... Cancels every armed timer and waits for timer loops to
// exit; in-flight ticks run to completion
func (s *Scheduler) Stop() {
	s.mu.Lock()
	for key, t := range s.tasks {
		close(t.stop)
		delete(s.tasks, key)
		s.stats.DecActiveOracles()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// CreateOracle ... Validates the origin and destination endpoints,
// arms a recurring timer and persists the oracle metadata. Duplicate
// (owner, contract) pairs are rejected.
func (s *Scheduler) CreateOracle(ctx context.Context, owner common.Address,
	origin core.Origin, intervalSeconds uint64, destination core.EvmDestination) error {
	if owner == core.ZeroAddress {
		return core.ErrAnonymousOwner
	}

	if intervalSeconds == 0 {
		return fmt.Errorf("timer interval must be positive")
	}

	if err := s.validateOrigin(ctx, origin); err != nil {
		return err
	}

	if err := s.validateEndpoint(ctx, destination.Provider); err != nil {
		return err
	}

	md := core.OracleMetadata{
		Owner:          owner,
		Origin:         origin,
		TimerInterval:  intervalSeconds,
		Evm:            destination,
		ScheduleHandle: uuid.NewString(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.oracles.Add(md); err != nil {
		return err
	}

	s.armLocked(core.OracleKey{Owner: owner, Contract: destination.Contract}, md)

	logging.WithContext(ctx).Info("Created oracle",
		zap.String(core.OwnerKey, owner.Hex()),
		zap.String(core.ContractKey, destination.Contract.Hex()),
		zap.String(core.HandleKey, md.ScheduleHandle))

	return nil
}

// UpdateOracleMetadata ... Applies a partial patch to an existing
// oracle, cancelling the previous timer and arming a new one with the
// merged metadata. Rejects empty patches and callers other than the
// stored owner.
func (s *Scheduler) UpdateOracleMetadata(ctx context.Context, caller, contractAddr common.Address,
	patch *core.UpdateOracleMetadata) error {
	if patch == nil || patch.IsNone() {
		return core.ErrEmptyUpdate
	}

	md, err := s.oracles.Get(caller, contractAddr)
	if err != nil {
		return err
	}

	if md.Owner != caller {
		return core.ErrNotOwner
	}

	if patch.Origin != nil {
		if err := s.validateOrigin(ctx, *patch.Origin); err != nil {
			return err
		}
	}

	if patch.Evm != nil {
		if err := s.validateEndpoint(ctx, patch.Evm.Provider); err != nil {
			return err
		}
	}

	handle := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := s.oracles.Update(caller, contractAddr, patch, handle)
	if err != nil {
		return err
	}

	// The registry key is fixed at creation even when the patch moves
	// Evm.Contract, so the replacement timer stays under the same key
	key := core.OracleKey{Owner: caller, Contract: contractAddr}
	s.cancelLocked(key)
	s.armLocked(key, merged)

	logging.WithContext(ctx).Info("Updated oracle metadata",
		zap.String(core.OwnerKey, caller.Hex()),
		zap.String(core.ContractKey, contractAddr.Hex()),
		zap.String(core.HandleKey, handle))

	return nil
}

// DeleteOracle ... Cancels the oracle's timer and removes its
// metadata; deletion of an absent oracle returns ErrOracleNotFound
func (s *Scheduler) DeleteOracle(ctx context.Context, caller, contractAddr common.Address) error {
	md, err := s.oracles.Get(caller, contractAddr)
	if err != nil {
		return err
	}

	if md.Owner != caller {
		return core.ErrNotOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.oracles.Remove(caller, contractAddr); err != nil {
		return err
	}

	s.cancelLocked(core.OracleKey{Owner: caller, Contract: contractAddr})

	logging.WithContext(ctx).Info("Deleted oracle",
		zap.String(core.OwnerKey, caller.Hex()),
		zap.String(core.ContractKey, contractAddr.Hex()))

	return nil
}

// Armed ... Reports the live timer handle for (owner, contract)
func (s *Scheduler) Armed(owner, contractAddr common.Address) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.tasks[core.OracleKey{Owner: owner, Contract: contractAddr}]
	if !exists {
		return "", false
	}

	return t.handle, true
}

// arm ... Arms a timer under the scheduler lock
func (s *Scheduler) arm(key core.OracleKey, md core.OracleMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armLocked(key, md)
}

// armLocked ... Arms a recurring timer for the oracle under its
// immutable registry key; caller holds s.mu. There must never be two
// live timers for the same key, so an existing task is cancelled first.
func (s *Scheduler) armLocked(key core.OracleKey, md core.OracleMetadata) {
	s.cancelLocked(key)

	t := &task{
		handle: md.ScheduleHandle,
		stop:   make(chan struct{}),
	}
	s.tasks[key] = t
	s.stats.IncActiveOracles()

	interval := time.Duration(md.TimerInterval) * s.tickUnit

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Each fire is an independent unit of work; overlapping
				// fires for the same oracle are allowed to run concurrently
				go s.fire(s.ctx, md)

			case <-t.stop:
				return

			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// cancelLocked ... Cancels the timer for a key if one is armed; caller
// holds s.mu. An in-flight tick is not interrupted.
func (s *Scheduler) cancelLocked(key core.OracleKey) {
	if t, exists := s.tasks[key]; exists {
		close(t.stop)
		delete(s.tasks, key)
		s.stats.DecActiveOracles()
	}
}

// fire ... Runs one fetch-sign-submit cycle. Every failure is logged
// and swallowed; the timer is never cancelled on failure and the next
// tick tries again.
func (s *Scheduler) fire(ctx context.Context, md core.OracleMetadata) {
	ctx, cancel := context.WithTimeout(ctx, tickTimeout)
	defer cancel()

	logger := logging.WithContext(ctx)

	price, err := s.resolver.Resolve(ctx, md.Origin)
	if err != nil {
		logger.Error("Failed to resolve oracle origin",
			zap.String(core.ContractKey, md.Evm.Contract.Hex()),
			zap.Error(err))
		s.stats.RecordTickFailure("resolve")
		return
	}

	data := contract.UpdatePriceCalldata(price)

	to := md.Evm.Contract
	tx, err := s.builder.BuildAndSign(ctx, md.Evm.Provider, &to, big.NewInt(0), data)
	if err != nil {
		logger.Error("Failed to build price update transaction",
			zap.String(core.ContractKey, md.Evm.Contract.Hex()),
			zap.Error(err))
		s.stats.RecordTickFailure("build")
		return
	}

	ethClient, err := s.clients.GetEthClient(ctx, md.Evm.Provider)
	if err != nil {
		logger.Error("Failed to reach destination endpoint",
			zap.String(core.ContractKey, md.Evm.Contract.Hex()),
			zap.Error(err))
		s.stats.RecordTickFailure("broadcast")
		return
	}

	if err := ethClient.SendTransaction(ctx, tx); err != nil {
		logger.Error("Failed to broadcast price update transaction",
			zap.String(core.ContractKey, md.Evm.Contract.Hex()),
			zap.Error(err))
		s.stats.RecordTickFailure("broadcast")
		return
	}

	s.stats.RecordPriceUpdate(string(md.Origin.Type))

	logger.Debug("Broadcast price update",
		zap.String(core.ContractKey, md.Evm.Contract.Hex()),
		zap.String(core.TxHashKey, tx.Hash().Hex()),
		zap.String("price", price.String()))
}

// validateOrigin ... Checks that an origin descriptor is usable before
// any state is committed
func (s *Scheduler) validateOrigin(ctx context.Context, origin core.Origin) error {
	if !origin.Valid() {
		return errors.New("origin descriptor is incomplete")
	}

	switch origin.Type {
	case core.HttpOrigin:
		parsed, err := url.Parse(origin.Http.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return core.NewHttpError("invalid origin url: %s", origin.Http.URL)
		}
		return nil

	case core.EvmOrigin:
		return s.validateEndpoint(ctx, origin.Evm.Provider)
	}

	return fmt.Errorf("unknown origin type: %s", origin.Type)
}

// validateEndpoint ... Dials the endpoint and cross-checks its chain id
func (s *Scheduler) validateEndpoint(ctx context.Context, endpoint core.ChainEndpoint) error {
	ethClient, err := s.clients.GetEthClient(ctx, endpoint)
	if err != nil {
		return &core.JsonRpcError{Method: "dial", Msg: err.Error()}
	}

	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		return &core.JsonRpcError{Method: "eth_chainId", Msg: err.Error()}
	}

	if endpoint.ChainID != 0 && chainID.Uint64() != endpoint.ChainID {
		return fmt.Errorf("chain id mismatch: endpoint declares %d, node reports %d",
			endpoint.ChainID, chainID.Uint64())
	}

	return nil
}
