package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// hardenedBit is the top bit of a derivation index; spec.md §4.3 forces it
// for Ed25519 (hardened-only) and reads it to select hardened-vs-normal for
// ECDSA.
const hardenedBit uint32 = 0x8000_0000

// Derive produces the i-th child of k, per spec.md §4.3: SLIP-0010
// hardened-only derivation for Ed25519, BIP-32 for ECDSA (hardened or
// normal depending on i's top bit). Fails with KeyDerive if k has no chain
// code.
func (k PrivateKey) Derive(i int32) (PrivateKey, error) {
	if !k.IsDerivable() {
		return PrivateKey{}, status.KeyDerive("key has no chain code", nil)
	}
	if k.Algorithm == Ed25519 {
		return k.deriveEd25519(i)
	}
	return k.deriveEcdsa(i)
}

// deriveEd25519 implements SLIP-0010's Ed25519 child-key derivation: the
// index's top bit is always forced on, since Ed25519 SLIP-10 only defines
// hardened derivation.
func (k PrivateKey) deriveEd25519(i int32) (PrivateKey, error) {
	index := uint32(i) | hardenedBit
	var data [37]byte
	data[0] = 0x00
	copy(data[1:33], k.raw)
	binary.BigEndian.PutUint32(data[33:], index)

	mac := hmac.New(sha512.New, k.ChainCode)
	mac.Write(data[:])
	sum := mac.Sum(nil)

	childKey := make([]byte, 32)
	copy(childKey, sum[:32])
	childChainCode := make([]byte, 32)
	copy(childChainCode, sum[32:])

	return PrivateKey{Algorithm: Ed25519, raw: childKey, ChainCode: childChainCode}, nil
}
