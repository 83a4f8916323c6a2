package mocks

import (
	context "context"

	gomock "github.com/golang/mock/gomock"

	"github.com/oracular-labs/oracular/internal/client"
	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/store"
)

// StaticFactory ... client.Factory returning one fixed client for
// every endpoint; used to substitute mocks in unit tests
type StaticFactory struct {
	Client client.EthClient
}

// GetEthClient ... Implements the client.Factory interface
func (sf *StaticFactory) GetEthClient(_ context.Context, _ core.ChainEndpoint) (client.EthClient, error) {
	return sf.Client, nil
}

// MockSuite ... Bundles the mocked collaborators most tests need
type MockSuite struct {
	Ctrl    *gomock.Controller
	EthMock *MockEthClient
	Factory *StaticFactory
	Store   store.Store
}

// NewMockSuite ... Constructs a mock suite with a memory-backed store
func NewMockSuite(ctrl *gomock.Controller) *MockSuite {
	ethMock := NewMockEthClient(ctrl)

	return &MockSuite{
		Ctrl:    ctrl,
		EthMock: ethMock,
		Factory: &StaticFactory{Client: ethMock},
		Store:   store.NewMemoryStore(),
	}
}
