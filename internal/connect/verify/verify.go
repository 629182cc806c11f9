// Package verify checks signatures produced by Kontos accounts. Kontos
// accounts are contract wallets (AA addresses), so verification goes through
// ERC-1271 isValidSignature instead of plain key recovery; EOAs connected
// through the same flow still take the recovery path.
package verify

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Kind reports which verification path was taken.
type Kind string

const (
	KindEOA      Kind = "eoa"
	KindContract Kind = "contract"
)

// magicValue is the EIP-1271 return value of isValidSignature on success.
var magicValue = [4]byte{0x16, 0x26, 0xba, 0x7e}

const isValidSignatureABI = `[
	{
		"inputs": [
			{"name": "hash", "type": "bytes32"},
			{"name": "signature", "type": "bytes"}
		],
		"name": "isValidSignature",
		"outputs": [{"name": "", "type": "bytes4"}],
		"stateMutability": "view",
		"type": "function"
	}
]`

// ChainReader is the narrow ethclient surface the verifier needs.
type ChainReader interface {
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Result describes the outcome of a verification.
type Result struct {
	Valid bool
	Kind  Kind
}

// Service verifies personal_sign signatures against an address.
type Service interface {
	VerifyPersonalSign(ctx context.Context, address string, message []byte, signature string) (*Result, error)
}

type service struct {
	reader ChainReader
	abi    abi.ABI
}

// NewService creates a verification service backed by the given chain reader.
//
//nolint:ireturn
func NewService(reader ChainReader) (Service, error) {
	parsed, err := abi.JSON(strings.NewReader(isValidSignatureABI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse isValidSignature abi")
	}

	return &service{
		reader: reader,
		abi:    parsed,
	}, nil
}

// VerifyPersonalSign verifies a signature over the EIP-191 text hash of
// message. Contract accounts are detected by code at the address and
// verified via isValidSignature; everything else falls back to ECDSA
// recovery.
func (s *service) VerifyPersonalSign(ctx context.Context, address string, message []byte, signature string) (*Result, error) {
	if !common.IsHexAddress(address) {
		return nil, errors.Errorf("invalid address %q", address)
	}
	addr := common.HexToAddress(address)

	sig, err := hexutil.Decode(signature)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode signature hex")
	}

	hash := accounts.TextHash(message)

	code, err := s.reader.CodeAt(ctx, addr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check code at address")
	}

	if len(code) > 0 {
		valid, err := s.verifyContract(ctx, addr, hash, sig)
		if err != nil {
			return nil, err
		}
		return &Result{Valid: valid, Kind: KindContract}, nil
	}

	return &Result{Valid: verifyEOA(addr, hash, sig), Kind: KindEOA}, nil
}

// verifyContract asks the account contract itself via ERC-1271.
func (s *service) verifyContract(ctx context.Context, addr common.Address, hash []byte, sig []byte) (bool, error) {
	var hash32 [32]byte
	copy(hash32[:], hash)

	input, err := s.abi.Pack("isValidSignature", hash32, sig)
	if err != nil {
		return false, errors.Wrap(err, "failed to pack isValidSignature call")
	}

	output, err := s.reader.CallContract(ctx, ethereum.CallMsg{
		To:   &addr,
		Data: input,
	}, nil)
	if err != nil {
		// Reverts mean the contract rejected the signature.
		return false, nil
	}

	if len(output) < len(magicValue) {
		return false, nil
	}

	var got [4]byte
	copy(got[:], output[:4])

	return got == magicValue, nil
}

// verifyEOA recovers the signing key and compares addresses.
func verifyEOA(addr common.Address, hash []byte, sig []byte) bool {
	if len(sig) != crypto.SignatureLength {
		return false
	}

	// Transform yellow paper V from 27/28 to 0/1.
	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	recovered, err := crypto.SigToPub(hash, normalized)
	if err != nil {
		return false
	}

	return crypto.PubkeyToAddress(*recovered) == addr
}
