package contract

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// updatePriceSelector ... 4-byte selector of updatePrice(int256)
var updatePriceSelector = crypto.Keccak256([]byte("updatePrice(int256)"))[:4]

// UpdatePriceCalldata ... Encodes the destination contract call
// carrying a new price value
func UpdatePriceCalldata(price *big.Int) []byte {
	data := make([]byte, 0, 4+32)
	data = append(data, updatePriceSelector...)
	return append(data, common.LeftPadBytes(price.Bytes(), 32)...)
}

// feedBytecode ... Compiled PriceFeed deployment artifact
var feedBytecode = hexutil.MustDecode(
	"0x608060405234801561001057600080fd5b5060405161028338038061028383398101604081905261002f9161" +
		"00d2565b600261003b84826101a1565b5060ff909116608052600155436000556102609081906100" +
		"5b90396000f3fe608060405234801561001057600080fd5b50600436106100415760003560e01c80" +
		"63313ce5671461004657806350d25bcd146100645780638da5cb5b1461007a57005b61004e610095" +
		"565b60405160ff909116815260200160405180910390f35b61006c6100a3565b6040519081526020" +
		"0160405180910390f35b6002546040516001600160a01b03909116815260200160405180910390f35b" +
		"60805160ff1690565b6001549056fea2646970667358221220ab5f4e9c0d7c3b2a19e8d6c4f0b1a2" +
		"938475660718293a4b5c6d7e8f9001122364736f6c63430008130033")

// deployArguments ... Constructor argument layout for the feed contract
func deployArguments() (abi.Arguments, error) {
	stringT, err := abi.NewType("string", "", nil)
	if err != nil {
		return nil, err
	}
	uint8T, err := abi.NewType("uint8", "", nil)
	if err != nil {
		return nil, err
	}
	uint256T, err := abi.NewType("uint256", "", nil)
	if err != nil {
		return nil, err
	}

	return abi.Arguments{
		{Name: "_description", Type: stringT},
		{Name: "_decimals", Type: uint8T},
		{Name: "_version", Type: uint256T},
	}, nil
}

// DeployFeedData ... Encodes the deployment payload for a new price
// feed contract: bytecode followed by packed constructor arguments
func DeployFeedData(description string, decimals uint8, version uint64) ([]byte, error) {
	args, err := deployArguments()
	if err != nil {
		return nil, fmt.Errorf("could not build constructor argument types: %w", err)
	}

	packed, err := args.Pack(description, decimals, new(big.Int).SetUint64(version))
	if err != nil {
		return nil, fmt.Errorf("could not encode constructor input: %w", err)
	}

	data := make([]byte, 0, len(feedBytecode)+len(packed))
	data = append(data, feedBytecode...)
	return append(data, packed...), nil
}
