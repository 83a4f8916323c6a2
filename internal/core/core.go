package core

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Env ... Represents the runtime environment
type Env string

const (
	Development Env = "development"
	Production  Env = "production"
	Local       Env = "local"
)

// FilePath ... Represents a file path
type FilePath string

// Logging keys used across subsystems
const (
	OwnerKey    = "owner"
	ContractKey = "contract"
	TxHashKey   = "tx_hash"
	HandleKey   = "schedule_handle"
	FeedKey     = "feed_id"
)

// OriginType ... Discriminates price origin variants
type OriginType string

const (
	HttpOrigin OriginType = "http"
	EvmOrigin  OriginType = "evm"
)

// ChainEndpoint ... Identifies a JSON-RPC endpoint and its chain
type ChainEndpoint struct {
	ChainID  uint64 `json:"chain_id"`
	Hostname string `json:"hostname"`
}

// String ... Returns a chain endpoint string representation
func (ce ChainEndpoint) String() string {
	return fmt.Sprintf("%d@%s", ce.ChainID, ce.Hostname)
}

// HttpOriginConfig ... Price sourced by walking a JSON document
// fetched over HTTP
type HttpOriginConfig struct {
	URL      string `json:"url"`
	JSONPath string `json:"json_path"`
}

// EvmOriginConfig ... Price sourced by a read-only contract call
// on another chain
type EvmOriginConfig struct {
	Provider      ChainEndpoint  `json:"provider"`
	TargetAddress common.Address `json:"target_address"`
	Method        string         `json:"method"`
}

// Origin ... Tagged union describing where a price value comes from;
// exactly one variant field is populated for the given Type
type Origin struct {
	Type OriginType        `json:"type"`
	Http *HttpOriginConfig `json:"http,omitempty"`
	Evm  *EvmOriginConfig  `json:"evm,omitempty"`
}

// NewHttpOrigin ... Constructs an HTTP origin
func NewHttpOrigin(url, jsonPath string) Origin {
	return Origin{
		Type: HttpOrigin,
		Http: &HttpOriginConfig{URL: url, JSONPath: jsonPath},
	}
}

// NewEvmOrigin ... Constructs an EVM read-call origin
func NewEvmOrigin(provider ChainEndpoint, target common.Address, method string) Origin {
	return Origin{
		Type: EvmOrigin,
		Evm:  &EvmOriginConfig{Provider: provider, TargetAddress: target, Method: method},
	}
}

// Valid ... Checks that the populated variant matches the declared type
func (o Origin) Valid() bool {
	switch o.Type {
	case HttpOrigin:
		return o.Http != nil && o.Http.URL != "" && o.Http.JSONPath != ""

	case EvmOrigin:
		return o.Evm != nil && o.Evm.Provider.Hostname != "" && o.Evm.Method != ""
	}

	return false
}

// EvmDestination ... Where an updated price is written
type EvmDestination struct {
	Contract common.Address `json:"contract"`
	Provider ChainEndpoint  `json:"provider"`
}

// OracleKey ... Uniquely identifies an oracle by its creator and
// destination contract
type OracleKey struct {
	Owner    common.Address
	Contract common.Address
}

// String ... Returns a composite key representation
func (ok OracleKey) String() string {
	return strings.ToLower(ok.Owner.Hex()) + "/" + strings.ToLower(ok.Contract.Hex())
}

// OracleMetadata ... Durable record describing a registered oracle
type OracleMetadata struct {
	Owner          common.Address `json:"owner"`
	Origin         Origin         `json:"origin"`
	TimerInterval  uint64         `json:"timer_interval"`
	Evm            EvmDestination `json:"evm"`
	ScheduleHandle string         `json:"schedule_handle"`
}

// UpdateOracleMetadata ... Partial patch applied to an existing oracle;
// nil fields preserve the stored values
type UpdateOracleMetadata struct {
	Origin        *Origin         `json:"origin,omitempty"`
	TimerInterval *uint64         `json:"timer_interval,omitempty"`
	Evm           *EvmDestination `json:"evm,omitempty"`
}

// IsNone ... Returns true when no patch field is set
func (u *UpdateOracleMetadata) IsNone() bool {
	return u.Origin == nil && u.TimerInterval == nil && u.Evm == nil
}

// ZeroAddress ... The anonymous principal; rejected as an owner everywhere
var ZeroAddress = common.Address{}
