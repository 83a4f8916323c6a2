//go:generate mockgen -package mocks --destination ../mocks/signer.go . Signer

package signer

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer ... Opaque signing capability consumed by the transaction
// builder; key management stays behind this boundary
type Signer interface {
	Address() common.Address
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// LocalSigner ... Signer backed by an in-process secp256k1 key
type LocalSigner struct {
	key *ecdsa.PrivateKey
}

// NewLocalSigner ... Parses a hex-encoded private key
func NewLocalSigner(hexKey string) (*LocalSigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("could not parse signer key: %w", err)
	}

	return &LocalSigner{key: key}, nil
}

// Address ... Returns the signer's address
func (ls *LocalSigner) Address() common.Address {
	return crypto.PubkeyToAddress(ls.key.PublicKey)
}

// SignTx ... Produces an EIP-155 signature over the transaction
func (ls *LocalSigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.NewEIP155Signer(chainID), ls.key)
	if err != nil {
		return nil, fmt.Errorf("could not sign transaction: %w", err)
	}

	return signed, nil
}
