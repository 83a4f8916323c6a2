//go:generate mockgen -package mocks --destination ../../mocks/api_service.go . Service

package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/oracular-labs/oracular/internal/api/models"
	"github.com/oracular-labs/oracular/internal/contract"
	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/registry"
	"github.com/oracular-labs/oracular/internal/scheduler"
)

// Service ... Interface for API service
type Service interface {
	CreateOracle(body *models.OracleRequestBody) error
	UpdateOracleMetadata(body *models.OracleUpdateBody) error
	DeleteOracle(owner, contractAddr common.Address) error
	GetOracleMetadata(owner, contractAddr common.Address) (core.OracleMetadata, error)
	GetUserOracles(owner common.Address) ([]core.OracleMetadata, error)
	GetAllOracles() (map[common.Address][]core.OracleMetadata, error)

	Owner() (common.Address, error)
	SetOwner(caller, owner common.Address) error

	CreateFeed(body *models.FeedRequestBody) (common.Hash, error)
	ListFeeds() ([]registry.Feed, error)

	CheckHealth() *models.HealthCheck
}

// OracularService ... API service
type OracularService struct {
	ctx context.Context

	scheduler *scheduler.Scheduler
	oracles   *registry.OracleRegistry
	settings  *registry.SettingsRegistry
	feeds     *registry.FeedRegistry
	contracts *contract.Service
}

// New ... Initializer
func New(ctx context.Context, s *scheduler.Scheduler, oracles *registry.OracleRegistry,
	settings *registry.SettingsRegistry, feeds *registry.FeedRegistry,
	contracts *contract.Service) *OracularService {
	return &OracularService{
		ctx:       ctx,
		scheduler: s,
		oracles:   oracles,
		settings:  settings,
		feeds:     feeds,
		contracts: contracts,
	}
}

// CreateOracle ... Registers a new oracle and arms its timer
func (svc *OracularService) CreateOracle(body *models.OracleRequestBody) error {
	return svc.scheduler.CreateOracle(svc.ctx, body.Owner, body.Origin,
		body.IntervalSeconds, body.Destination)
}

// UpdateOracleMetadata ... Applies a partial patch to an oracle
func (svc *OracularService) UpdateOracleMetadata(body *models.OracleUpdateBody) error {
	return svc.scheduler.UpdateOracleMetadata(svc.ctx, body.Owner, body.Contract, &body.Patch)
}

// DeleteOracle ... Removes an oracle and cancels its timer
func (svc *OracularService) DeleteOracle(owner, contractAddr common.Address) error {
	return svc.scheduler.DeleteOracle(svc.ctx, owner, contractAddr)
}

// GetOracleMetadata ... Fetches metadata for one oracle
func (svc *OracularService) GetOracleMetadata(owner, contractAddr common.Address) (core.OracleMetadata, error) {
	return svc.oracles.Get(owner, contractAddr)
}

// GetUserOracles ... Fetches all oracles created by an owner
func (svc *OracularService) GetUserOracles(owner common.Address) ([]core.OracleMetadata, error) {
	return svc.oracles.GetUserOracles(owner)
}

// GetAllOracles ... Fetches every registered oracle grouped by owner
func (svc *OracularService) GetAllOracles() (map[common.Address][]core.OracleMetadata, error) {
	return svc.oracles.GetAll()
}

// Owner ... Returns the service owner
func (svc *OracularService) Owner() (common.Address, error) {
	return svc.settings.Owner()
}

// SetOwner ... Transfers service ownership
func (svc *OracularService) SetOwner(caller, owner common.Address) error {
	return svc.settings.SetOwner(caller, owner)
}

// CreateFeed ... Deploys a new price feed contract
func (svc *OracularService) CreateFeed(body *models.FeedRequestBody) (common.Hash, error) {
	feed := registry.Feed{
		ID:          body.ID,
		Description: body.Description,
		Decimals:    body.Decimals,
		Version:     body.Version,
	}

	return svc.contracts.CreateFeed(svc.ctx, body.Provider, feed)
}

// ListFeeds ... Returns all feed records
func (svc *OracularService) ListFeeds() ([]registry.Feed, error) {
	return svc.feeds.ListFeeds()
}

// CheckHealth ... Returns health check
func (svc *OracularService) CheckHealth() *models.HealthCheck {
	return &models.HealthCheck{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Healthy:   true,
	}
}
