package contract_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oracular-labs/oracular/internal/contract"
	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/mocks"
	"github.com/oracular-labs/oracular/internal/registry"
	"github.com/oracular-labs/oracular/internal/signer"
	"github.com/oracular-labs/oracular/internal/txbuilder"
)

const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var testEndpoint = core.ChainEndpoint{ChainID: 5, Hostname: "https://goerli.example"}

type serviceSuite struct {
	*mocks.MockSuite
	feeds   *registry.FeedRegistry
	pending *registry.PendingTxRegistry
	service *contract.Service
}

func newServiceSuite(t *testing.T, ctrl *gomock.Controller) *serviceSuite {
	t.Helper()

	suite := mocks.NewMockSuite(ctrl)

	ls, err := signer.NewLocalSigner(testKey)
	require.NoError(t, err)

	feeds := registry.NewFeedRegistry(suite.Store)
	pending := registry.NewPendingTxRegistry(suite.Store)
	builder := txbuilder.NewBuilder(suite.Factory, ls)

	return &serviceSuite{
		MockSuite: suite,
		feeds:     feeds,
		pending:   pending,
		service:   contract.NewService(suite.Factory, builder, feeds, pending),
	}
}

func Test_CreateFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	suite := newServiceSuite(t, ctrl)

	suite.EthMock.EXPECT().
		PendingNonceAt(gomock.Any(), gomock.Any()).
		Return(uint64(0), nil)
	suite.EthMock.EXPECT().
		SuggestGasPrice(gomock.Any()).
		Return(big.NewInt(1), nil)
	suite.EthMock.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	feed := registry.Feed{ID: "btc-usd", Description: "BTC / USD", Decimals: 8, Version: 1}

	txHash, err := suite.service.CreateFeed(context.Background(), testEndpoint, feed)
	require.NoError(t, err)

	// The feed record is durable and the callback awaits the hash
	stored, err := suite.feeds.GetFeed("btc-usd")
	assert.NoError(t, err)
	assert.Nil(t, stored.Contract)

	cb, found, err := suite.pending.Extract(txHash)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, core.FeedCreation, cb.Type)
	assert.Equal(t, "btc-usd", cb.FeedCreation.FeedID)
}

func Test_CreateFeed_DuplicateID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	suite := newServiceSuite(t, ctrl)

	feed := registry.Feed{ID: "btc-usd", Description: "BTC / USD", Decimals: 8, Version: 1}
	require.NoError(t, suite.feeds.AddFeed(feed))

	// No chain interaction happens when the record already exists
	_, err := suite.service.CreateFeed(context.Background(), testEndpoint, feed)
	assert.ErrorIs(t, err, core.ErrFeedAlreadyExists)
}

func Test_CreateFeed_BroadcastFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	suite := newServiceSuite(t, ctrl)

	suite.EthMock.EXPECT().
		PendingNonceAt(gomock.Any(), gomock.Any()).
		Return(uint64(0), nil)
	suite.EthMock.EXPECT().
		SuggestGasPrice(gomock.Any()).
		Return(big.NewInt(1), nil)
	suite.EthMock.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		Return(errors.New("nonce too low"))

	feed := registry.Feed{ID: "btc-usd", Description: "BTC / USD", Decimals: 8, Version: 1}

	_, err := suite.service.CreateFeed(context.Background(), testEndpoint, feed)
	require.Error(t, err)

	// No callback is registered for a transaction that never broadcast
	entries, err := suite.pending.List()
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
