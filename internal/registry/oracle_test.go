package registry_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oracular-labs/oracular/internal/core"
	"github.com/oracular-labs/oracular/internal/registry"
	"github.com/oracular-labs/oracular/internal/store"
)

var (
	testOwner    = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testOwner2   = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testContract = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	testEndpoint = core.ChainEndpoint{ChainID: 5, Hostname: "https://goerli.example"}
)

func testMetadata(owner, contract common.Address) core.OracleMetadata {
	return core.OracleMetadata{
		Owner:          owner,
		Origin:         core.NewHttpOrigin("https://prices.example/spot", "data.amount"),
		TimerInterval:  60,
		Evm:            core.EvmDestination{Contract: contract, Provider: testEndpoint},
		ScheduleHandle: "handle-0",
	}
}

func Test_OracleRegistry_AddAndGet(t *testing.T) {
	or := registry.NewOracleRegistry(store.NewMemoryStore())

	md := testMetadata(testOwner, testContract)
	require.NoError(t, or.Add(md))

	got, err := or.Get(testOwner, testContract)
	assert.NoError(t, err)
	assert.Equal(t, md, got)
}

func Test_OracleRegistry_RejectsDuplicateKey(t *testing.T) {
	or := registry.NewOracleRegistry(store.NewMemoryStore())

	md := testMetadata(testOwner, testContract)
	require.NoError(t, or.Add(md))

	// Same (owner, contract) pair with a different origin still collides
	dup := md
	dup.Origin = core.NewHttpOrigin("https://other.example", "price")
	assert.ErrorIs(t, or.Add(dup), core.ErrOracleAlreadyExists)

	// The stored record is untouched
	got, err := or.Get(testOwner, testContract)
	assert.NoError(t, err)
	assert.Equal(t, md.Origin, got.Origin)
}

func Test_OracleRegistry_UpdatePreservesUnsetFields(t *testing.T) {
	or := registry.NewOracleRegistry(store.NewMemoryStore())

	md := testMetadata(testOwner, testContract)
	require.NoError(t, or.Add(md))

	newInterval := uint64(120)
	patch := &core.UpdateOracleMetadata{TimerInterval: &newInterval}

	updated, err := or.Update(testOwner, testContract, patch, "handle-1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(120), updated.TimerInterval)
	assert.Equal(t, md.Origin, updated.Origin)
	assert.Equal(t, md.Evm, updated.Evm)
	assert.Equal(t, "handle-1", updated.ScheduleHandle)

	got, err := or.Get(testOwner, testContract)
	assert.NoError(t, err)
	assert.Equal(t, updated, got)
}

func Test_OracleRegistry_UpdateUnknownKey(t *testing.T) {
	or := registry.NewOracleRegistry(store.NewMemoryStore())

	newInterval := uint64(120)
	_, err := or.Update(testOwner, testContract,
		&core.UpdateOracleMetadata{TimerInterval: &newInterval}, "handle-1")
	assert.ErrorIs(t, err, core.ErrOracleNotFound)
}

func Test_OracleRegistry_Remove(t *testing.T) {
	or := registry.NewOracleRegistry(store.NewMemoryStore())

	require.NoError(t, or.Add(testMetadata(testOwner, testContract)))
	require.NoError(t, or.Remove(testOwner, testContract))

	_, err := or.Get(testOwner, testContract)
	assert.ErrorIs(t, err, core.ErrOracleNotFound)

	// Removing again fails the same way
	assert.ErrorIs(t, or.Remove(testOwner, testContract), core.ErrOracleNotFound)
}

func Test_OracleRegistry_GetUserOracles(t *testing.T) {
	or := registry.NewOracleRegistry(store.NewMemoryStore())

	contract2 := common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	require.NoError(t, or.Add(testMetadata(testOwner, testContract)))
	require.NoError(t, or.Add(testMetadata(testOwner, contract2)))
	require.NoError(t, or.Add(testMetadata(testOwner2, testContract)))

	oracles, err := or.GetUserOracles(testOwner)
	assert.NoError(t, err)
	assert.Len(t, oracles, 2)

	_, err = or.GetUserOracles(common.HexToAddress("0x3333333333333333333333333333333333333333"))
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func Test_OracleRegistry_GetAll(t *testing.T) {
	or := registry.NewOracleRegistry(store.NewMemoryStore())

	require.NoError(t, or.Add(testMetadata(testOwner, testContract)))
	require.NoError(t, or.Add(testMetadata(testOwner2, testContract)))

	all, err := or.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Len(t, all[testOwner], 1)
	assert.Len(t, all[testOwner2], 1)
}

func Test_OracleRegistry_Entries(t *testing.T) {
	or := registry.NewOracleRegistry(store.NewMemoryStore())

	contract2 := common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	require.NoError(t, or.Add(testMetadata(testOwner, testContract)))

	// Patching the destination contract does not move the record; the
	// entry key keeps the creation pair
	dest := core.EvmDestination{Contract: contract2, Provider: testEndpoint}
	_, err := or.Update(testOwner, testContract, &core.UpdateOracleMetadata{Evm: &dest}, "handle-1")
	require.NoError(t, err)

	entries, err := or.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, registry.OracleEntry{
		Key:      core.OracleKey{Owner: testOwner, Contract: testContract},
		Metadata: entries[0].Metadata,
	}, entries[0])
	assert.Equal(t, contract2, entries[0].Metadata.Evm.Contract)
}

func Test_OracleRegistry_SetHandle(t *testing.T) {
	or := registry.NewOracleRegistry(store.NewMemoryStore())

	require.NoError(t, or.Add(testMetadata(testOwner, testContract)))
	require.NoError(t, or.SetHandle(testOwner, testContract, "rearmed"))

	got, err := or.Get(testOwner, testContract)
	assert.NoError(t, err)
	assert.Equal(t, "rearmed", got.ScheduleHandle)
}
