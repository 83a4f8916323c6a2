package contract_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oracular-labs/oracular/internal/contract"
)

func Test_UpdatePriceCalldata(t *testing.T) {
	data := contract.UpdatePriceCalldata(big.NewInt(123456000000))

	assert.Len(t, data, 36)
	assert.Equal(t, crypto.Keccak256([]byte("updatePrice(int256)"))[:4], data[:4])

	// The price occupies the low bytes of a left-padded word
	assert.Equal(t, big.NewInt(123456000000), new(big.Int).SetBytes(data[4:]))
}

func Test_UpdatePriceCalldata_ZeroPrice(t *testing.T) {
	data := contract.UpdatePriceCalldata(big.NewInt(0))

	assert.Len(t, data, 36)
	assert.Equal(t, make([]byte, 32), data[4:])
}

func Test_DeployFeedData(t *testing.T) {
	data, err := contract.DeployFeedData("BTC / USD", 8, 1)
	require.NoError(t, err)

	// Constructor input follows the bytecode: three words of head plus
	// the dynamic string tail
	assert.Greater(t, len(data), 3*32)

	// Deterministic for identical inputs
	again, err := contract.DeployFeedData("BTC / USD", 8, 1)
	require.NoError(t, err)
	assert.Equal(t, data, again)

	// Differing constructor arguments change the payload
	other, err := contract.DeployFeedData("ETH / USD", 8, 1)
	require.NoError(t, err)
	assert.NotEqual(t, data, other)
}
