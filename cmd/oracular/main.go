package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/oracular-labs/oracular/internal/api/handlers"
	"github.com/oracular-labs/oracular/internal/api/server"
	"github.com/oracular-labs/oracular/internal/api/service"
	"github.com/oracular-labs/oracular/internal/app"
	"github.com/oracular-labs/oracular/internal/callback"
	"github.com/oracular-labs/oracular/internal/client"
	"github.com/oracular-labs/oracular/internal/config"
	"github.com/oracular-labs/oracular/internal/contract"
	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/logging"
	"github.com/oracular-labs/oracular/internal/metrics"
	"github.com/oracular-labs/oracular/internal/processor"
	"github.com/oracular-labs/oracular/internal/registry"
	"github.com/oracular-labs/oracular/internal/resolver"
	"github.com/oracular-labs/oracular/internal/scheduler"
	"github.com/oracular-labs/oracular/internal/signer"
	"github.com/oracular-labs/oracular/internal/store"
	"github.com/oracular-labs/oracular/internal/txbuilder"
)

const (
	cfgPath = "config.env"
)

func main() {
	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.NewConfig(cfgPath)

	logging.NewLogger(nil, cfg.IsProduction())
	logger := logging.WithContext(appCtx)

	logger.Info("oracular boot up")

	db, err := store.NewBoltStore(store.BoltOptions{FilePath: cfg.StorePath})
	if err != nil {
		logger.Fatal("Could not open durable store", zap.Error(err))
	}
	defer db.Close()

	settings := registry.NewSettingsRegistry(db)
	if err := settings.Init(registry.Settings{
		Owner:       cfg.Owner,
		EvmChainID:  cfg.EngineConfig.EvmChainID,
		EvmHostname: cfg.EngineConfig.EvmRpcEndpoint,
	}); err != nil {
		// Malformed init input is a startup abort, not a recoverable error
		logger.Fatal("Could not initialize settings", zap.Error(err))
	}

	oracles := registry.NewOracleRegistry(db)
	pending := registry.NewPendingTxRegistry(db)
	feeds := registry.NewFeedRegistry(db)

	txSigner, err := signer.NewLocalSigner(cfg.SignerPrivateKey)
	if err != nil {
		logger.Fatal("Could not construct signer", zap.Error(err))
	}

	stats := metrics.NewMetrics()
	clients := client.NewFactory()
	prices := client.NewPriceClient()

	priceResolver := resolver.NewResolver(prices, clients)
	builder := txbuilder.NewBuilder(clients, txSigner)

	sched := scheduler.NewScheduler(appCtx, oracles, priceResolver, builder, clients, stats)

	destination := core.ChainEndpoint{
		ChainID:  cfg.EngineConfig.EvmChainID,
		Hostname: cfg.EngineConfig.EvmRpcEndpoint,
	}

	dispatcher := callback.NewDispatcher(feeds)
	proc := processor.NewProcessor(app.ProcessInterval(cfg.EngineConfig.ProcessInterval),
		destination, pending, clients, dispatcher, stats)

	contracts := contract.NewService(clients, builder, feeds, pending)

	apiService := service.New(appCtx, sched, oracles, settings, feeds, contracts)
	handler, err := handlers.New(appCtx, apiService)
	if err != nil {
		logger.Fatal("Could not construct API handlers", zap.Error(err))
	}

	apiServer, shutDownServer, err := server.New(appCtx, cfg.ServerConfig, handler)
	if err != nil {
		logger.Fatal("Could not start API server", zap.Error(err))
	}

	application := app.New(appCtx, sched, proc, apiServer, stats, cfg.MetricsConfig)

	if err := application.Start(); err != nil {
		logger.Fatal("Could not start application", zap.Error(err))
	}

	logger.Info("oracular started",
		zap.String("owner", cfg.Owner.Hex()),
		zap.Uint64("chain_id", cfg.EngineConfig.EvmChainID))

	application.ListenForShutdown(func() {
		shutDownServer()
		cancel()
	})
}
