package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519SignVerifyRoundTrip(t *testing.T) {
	priv, err := GenerateEd25519()
	require.NoError(t, err)
	pub := priv.PublicKey()

	msg := []byte("hello world")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)
	assert.NoError(t, pub.Verify(msg, sig))
}

func TestEcdsaSignVerifyRoundTrip(t *testing.T) {
	priv, err := GenerateEcdsa()
	require.NoError(t, err)
	pub := priv.PublicKey()

	msg := []byte("hello world")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)
	assert.Len(t, sig, 64)
	assert.NoError(t, pub.Verify(msg, sig))
}

func TestCrossAlgorithmVerifyFails(t *testing.T) {
	edPriv, err := GenerateEd25519()
	require.NoError(t, err)
	ecPriv, err := GenerateEcdsa()
	require.NoError(t, err)

	msg := []byte("hello world")
	sig, err := edPriv.Sign(msg)
	require.NoError(t, err)

	err = ecPriv.PublicKey().Verify(msg, sig)
	assert.Error(t, err)
}

// TestEcdsaSignatureVector reproduces spec.md §8 scenario 4: a fixed ECDSA
// private key signs a fixed message to a fixed 64-byte signature.
func TestEcdsaSignatureVector(t *testing.T) {
	derHex := "3030020100300706052b8104000a042204208776c6b831a1b61ac10dac0304a2843de4716f54b1919bb91a2685d0fe3f3048"
	der, err := hex.DecodeString(derHex)
	require.NoError(t, err)

	priv, err := PrivateKeyFromDER(der)
	require.NoError(t, err)
	require.Equal(t, EcdsaSecp256k1, priv.Algorithm)

	sig, err := priv.Sign([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "f3a13a555f1f8cd6532716b8f388bd4e9d8ed0b252743e923114c0c6cbfe414c086e3717a6502c3edff6130d34df252fb94b6f662d0cd27e2110903320563851", hex.EncodeToString(sig))
	assert.NoError(t, priv.PublicKey().Verify([]byte("hello world"), sig))
}

// TestEvmAddressDerivationVector reproduces spec.md §8 scenario 5.
func TestEvmAddressDerivationVector(t *testing.T) {
	pubHex := "029469a657510f3bf199a0e29b21e11e7039d8883f3547d59c3568f9c89f704cbc"
	pubBytes, err := hex.DecodeString(pubHex)
	require.NoError(t, err)

	pub, err := EcdsaPublicKeyFromBytes(pubBytes)
	require.NoError(t, err)

	addrHex, err := pub.EvmAddressHex()
	require.NoError(t, err)
	assert.Equal(t, "0xbbaa6bdfe888ae1fc8e7c8cee82081fa79ba8834", addrHex)
}

func TestDeriveRequiresChainCode(t *testing.T) {
	priv, err := GenerateEd25519()
	require.NoError(t, err)
	_, err = priv.Derive(0)
	assert.Error(t, err)
}

func TestEd25519DeriveDeterministic(t *testing.T) {
	priv := PrivateKey{Algorithm: Ed25519, raw: make([]byte, 32), ChainCode: make([]byte, 32)}
	a, err := priv.Derive(5)
	require.NoError(t, err)
	b, err := priv.Derive(5)
	require.NoError(t, err)
	assert.Equal(t, a.RawBytes(), b.RawBytes())
	assert.Equal(t, a.ChainCode, b.ChainCode)

	c, err := priv.Derive(6)
	require.NoError(t, err)
	assert.NotEqual(t, a.RawBytes(), c.RawBytes())
}

func TestEcdsaDeriveDeterministic(t *testing.T) {
	priv, err := GenerateEcdsa()
	require.NoError(t, err)
	priv.ChainCode = make([]byte, 32)
	for i := range priv.ChainCode {
		priv.ChainCode[i] = byte(i)
	}

	a, err := priv.Derive(0)
	require.NoError(t, err)
	b, err := priv.Derive(0)
	require.NoError(t, err)
	assert.Equal(t, a.RawBytes(), b.RawBytes())
}

func TestLegacyDeriveDeterministic(t *testing.T) {
	seed := make([]byte, 32)
	a, err := LegacyDerive(seed, -1)
	require.NoError(t, err)
	b, err := LegacyDerive(seed, -1)
	require.NoError(t, err)
	assert.Equal(t, a.RawBytes(), b.RawBytes())

	c, err := LegacyDerive(seed, 0xFFFFFFFFFF)
	require.NoError(t, err)
	assert.NotEqual(t, a.RawBytes(), c.RawBytes())
}

func TestDERRoundTripEd25519(t *testing.T) {
	priv, err := GenerateEd25519()
	require.NoError(t, err)
	der, err := priv.ToDER()
	require.NoError(t, err)

	parsed, err := PrivateKeyFromDER(der)
	require.NoError(t, err)
	assert.Equal(t, priv.RawBytes(), parsed.RawBytes())
}

func TestDERRoundTripEcdsa(t *testing.T) {
	priv, err := GenerateEcdsa()
	require.NoError(t, err)
	der, err := priv.ToDER()
	require.NoError(t, err)

	parsed, err := PrivateKeyFromDER(der)
	require.NoError(t, err)
	assert.Equal(t, priv.RawBytes(), parsed.RawBytes())
}

func TestPublicKeyDERRoundTripEcdsa(t *testing.T) {
	priv, err := GenerateEcdsa()
	require.NoError(t, err)
	pub := priv.PublicKey()
	der, err := pub.ToDER()
	require.NoError(t, err)

	parsed, err := PublicKeyFromDER(der)
	require.NoError(t, err)
	assert.Equal(t, pub.RawBytes(), parsed.RawBytes())
}

// TestEd25519PublicKeyMatchesSolanaOracle checks that our raw 32-byte Ed25519
// public key survives a round trip through solana-go's PublicKey type
// byte-for-byte (Solana addresses are the base58 form of those raw bytes).
func TestEd25519PublicKeyMatchesSolanaOracle(t *testing.T) {
	priv, err := GenerateEd25519()
	require.NoError(t, err)
	pub := priv.PublicKey()

	oracle := solana.PublicKeyFromBytes(pub.RawBytes())
	assert.Equal(t, pub.RawBytes(), oracle.Bytes())
}

// TestEd25519PrivateKeyMatchesStellarOracle cross-checks our raw Ed25519
// private-key-to-public-key derivation against Stellar's independent
// implementation, which derives the same standard Ed25519 point from a
// 32-byte seed.
func TestEd25519PrivateKeyMatchesStellarOracle(t *testing.T) {
	priv, err := GenerateEd25519()
	require.NoError(t, err)
	pub := priv.PublicKey()

	var seed [32]byte
	copy(seed[:], priv.RawBytes())
	kp, err := keypair.FromRawSeed(seed)
	require.NoError(t, err)

	oracleRaw, err := strkey.Decode(strkey.VersionByteAccountID, kp.Address())
	require.NoError(t, err)
	assert.Equal(t, pub.RawBytes(), oracleRaw)
}

func TestStringParsingAccepts0xPrefix(t *testing.T) {
	priv, err := GenerateEd25519()
	require.NoError(t, err)
	s, err := priv.ToStringDER()
	require.NoError(t, err)

	parsed, err := PrivateKeyFromString("0x" + s)
	require.NoError(t, err)
	assert.Equal(t, priv.RawBytes(), parsed.RawBytes())
}
