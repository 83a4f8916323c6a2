package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oracular-labs/oracular/internal/api/handlers"
	"github.com/oracular-labs/oracular/internal/api/models"
	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/mocks"
)

var (
	testOwner    = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testContract = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
)

type handlerSuite struct {
	service *mocks.MockService
	server  *httptest.Server
}

func newHandlerSuite(t *testing.T, ctrl *gomock.Controller) *handlerSuite {
	t.Helper()

	svc := mocks.NewMockService(ctrl)

	h, err := handlers.New(context.Background(), svc)
	require.NoError(t, err)

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	return &handlerSuite{service: svc, server: server}
}

func decodeResponse(t *testing.T, resp *http.Response) *models.Response {
	t.Helper()

	var out models.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NoError(t, resp.Body.Close())

	return &out
}

func oracleBody() *models.OracleRequestBody {
	return &models.OracleRequestBody{
		Owner:           testOwner,
		Origin:          core.NewHttpOrigin("https://prices.example/spot", "data.amount"),
		IntervalSeconds: 60,
		Destination: core.EvmDestination{
			Contract: testContract,
			Provider: core.ChainEndpoint{ChainID: 5, Hostname: "https://goerli.example"},
		},
	}
}

func Test_HealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	hs.service.EXPECT().
		CheckHealth().
		Return(&models.HealthCheck{Timestamp: "now", Healthy: true})

	resp, err := http.Get(hs.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var hc models.HealthCheck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&hc))
	assert.True(t, hc.Healthy)
}

func Test_CreateOracle_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	hs.service.EXPECT().
		CreateOracle(gomock.Any()).
		Return(nil)

	raw, err := json.Marshal(oracleBody())
	require.NoError(t, err)

	resp, err := http.Post(hs.server.URL+"/v0/oracle", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.Equal(t, models.OK, out.Status)
}

func Test_CreateOracle_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	resp, err := http.Post(hs.server.URL+"/v0/oracle", "application/json",
		bytes.NewReader([]byte("{broken")))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.Equal(t, models.NotOK, out.Status)
}

func Test_CreateOracle_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	hs.service.EXPECT().
		CreateOracle(gomock.Any()).
		Return(core.ErrOracleAlreadyExists)

	raw, err := json.Marshal(oracleBody())
	require.NoError(t, err)

	resp, err := http.Post(hs.server.URL+"/v0/oracle", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.Equal(t, models.NotOK, out.Status)
	assert.Contains(t, out.Error, "already exists")
}

func Test_UpdateOracle_EmptyPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	hs.service.EXPECT().
		UpdateOracleMetadata(gomock.Any()).
		Return(core.ErrEmptyUpdate)

	body := &models.OracleUpdateBody{Owner: testOwner, Contract: testContract}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPatch, hs.server.URL+"/v0/oracle", bytes.NewReader(raw))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_DeleteOracle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	hs.service.EXPECT().
		DeleteOracle(testOwner, testContract).
		Return(nil)

	url := fmt.Sprintf("%s/v0/oracle?owner=%s&contract=%s",
		hs.server.URL, testOwner.Hex(), testContract.Hex())

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func Test_DeleteOracle_BadAddressParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	url := fmt.Sprintf("%s/v0/oracle?owner=%s&contract=nonsense",
		hs.server.URL, testOwner.Hex())

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_GetOracleMetadata_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	hs.service.EXPECT().
		GetOracleMetadata(testOwner, testContract).
		Return(core.OracleMetadata{}, core.ErrOracleNotFound)

	url := fmt.Sprintf("%s/v0/oracle?owner=%s&contract=%s",
		hs.server.URL, testOwner.Hex(), testContract.Hex())

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_GetOracles_ScopedToOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	hs.service.EXPECT().
		GetUserOracles(testOwner).
		Return([]core.OracleMetadata{{Owner: testOwner}}, nil)

	resp, err := http.Get(fmt.Sprintf("%s/v0/oracles?owner=%s", hs.server.URL, testOwner.Hex()))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func Test_GetOracles_All(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	hs.service.EXPECT().
		GetAllOracles().
		Return(map[common.Address][]core.OracleMetadata{
			testOwner: {{Owner: testOwner}},
		}, nil)

	resp, err := http.Get(hs.server.URL + "/v0/oracles")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeResponse(t, resp)
	result, ok := out.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, result, testOwner.Hex())
}

func Test_SetOwner_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	hs.service.EXPECT().
		SetOwner(gomock.Any(), gomock.Any()).
		Return(core.ErrNotOwner)

	raw, err := json.Marshal(&models.OwnerUpdateBody{Caller: testContract, Owner: testOwner})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, hs.server.URL+"/v0/owner", bytes.NewReader(raw))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func Test_CreateFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := newHandlerSuite(t, ctrl)

	txHash := common.HexToHash("0x07")

	hs.service.EXPECT().
		CreateFeed(gomock.Any()).
		Return(txHash, nil)

	raw, err := json.Marshal(&models.FeedRequestBody{
		ID: "btc-usd", Description: "BTC / USD", Decimals: 8, Version: 1,
	})
	require.NoError(t, err)

	resp, err := http.Post(hs.server.URL+"/v0/feed", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	out := decodeResponse(t, resp)
	result, ok := out.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, txHash.Hex(), result["tx_hash"])
}
