package verify_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/kontos/connect/internal/connect/verify"
)

// fakeChain serves CodeAt/CallContract from canned responses.
type fakeChain struct {
	code       map[common.Address][]byte
	callOutput []byte
	callErr    error
}

func (f *fakeChain) CodeAt(_ context.Context, account common.Address, _ *big.Int) ([]byte, error) {
	return f.code[account], nil
}

func (f *fakeChain) CallContract(_ context.Context, _ ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	return f.callOutput, f.callErr
}

func signPersonal(t *testing.T, msg []byte) (common.Address, string) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	require.NoError(t, err)

	// Wallets return V as 27/28.
	sig[crypto.RecoveryIDOffset] += 27

	return crypto.PubkeyToAddress(key.PublicKey), hexutil.Encode(sig)
}

func TestVerifyPersonalSignEOA(t *testing.T) {
	msg := []byte("login to example.org")
	addr, sig := signPersonal(t, msg)

	svc, err := verify.NewService(&fakeChain{})
	require.NoError(t, err)

	res, err := svc.VerifyPersonalSign(t.Context(), addr.Hex(), msg, sig)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, verify.KindEOA, res.Kind)
}

func TestVerifyPersonalSignEOAWrongSigner(t *testing.T) {
	msg := []byte("login to example.org")
	_, sig := signPersonal(t, msg)
	other, _ := signPersonal(t, msg)

	svc, err := verify.NewService(&fakeChain{})
	require.NoError(t, err)

	res, err := svc.VerifyPersonalSign(t.Context(), other.Hex(), msg, sig)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, verify.KindEOA, res.Kind)
}

func TestVerifyPersonalSignContractMagicValue(t *testing.T) {
	contract := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	// isValidSignature returns the magic value abi-encoded as bytes4, left
	// aligned in a 32 byte word.
	output := make([]byte, 32)
	copy(output, []byte{0x16, 0x26, 0xba, 0x7e})

	chain := &fakeChain{
		code:       map[common.Address][]byte{contract: {0x60, 0x80}},
		callOutput: output,
	}

	svc, err := verify.NewService(chain)
	require.NoError(t, err)

	res, err := svc.VerifyPersonalSign(t.Context(), contract.Hex(), []byte("msg"), "0x1234")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, verify.KindContract, res.Kind)
}

func TestVerifyPersonalSignContractRejects(t *testing.T) {
	contract := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	chain := &fakeChain{
		code:       map[common.Address][]byte{contract: {0x60, 0x80}},
		callOutput: make([]byte, 32), // zero bytes4, not the magic value
	}

	svc, err := verify.NewService(chain)
	require.NoError(t, err)

	res, err := svc.VerifyPersonalSign(t.Context(), contract.Hex(), []byte("msg"), "0x1234")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, verify.KindContract, res.Kind)
}

func TestVerifyPersonalSignInvalidAddress(t *testing.T) {
	svc, err := verify.NewService(&fakeChain{})
	require.NoError(t, err)

	_, err = svc.VerifyPersonalSign(t.Context(), "not-an-address", []byte("msg"), "0x1234")
	require.Error(t, err)
}

func TestVerifyPersonalSignInvalidSignatureHex(t *testing.T) {
	svc, err := verify.NewService(&fakeChain{})
	require.NoError(t, err)

	_, err = svc.VerifyPersonalSign(t.Context(), common.Address{}.Hex(), []byte("msg"), "zz")
	require.Error(t, err)
}
