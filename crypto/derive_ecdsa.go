package crypto

import (
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/mr-tron/base58"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// privateVersion is the "xprv" mainnet BIP-32 version bytes; derivation
// arithmetic does not depend on network, only the serialization prefix
// used to round-trip the child chain code through hdkeychain.ExtendedKey.
var privateVersion = [4]byte{0x04, 0x88, 0xad, 0xe4}

// deriveEcdsa implements BIP-32 child-key derivation via
// btcsuite/btcd/btcutil/hdkeychain, grounded on the same library the
// teacher's HD-key service uses for Bitcoin-style derivation. The index's
// top bit selects hardened vs. normal derivation, per spec.md §4.3.
func (k PrivateKey) deriveEcdsa(i int32) (PrivateKey, error) {
	index := uint32(i)

	parent := hdkeychain.NewExtendedKey(
		privateVersion[:], k.raw, k.ChainCode,
		[]byte{0, 0, 0, 0}, 0, 0, true,
	)

	child, err := parent.Derive(index)
	if err != nil {
		return PrivateKey{}, status.KeyDerive("ecdsa child derivation failed", err)
	}

	childPriv, err := child.ECPrivKey()
	if err != nil {
		return PrivateKey{}, status.KeyDerive("failed to extract child private key", err)
	}

	childChainCode, err := extractChainCode(child)
	if err != nil {
		return PrivateKey{}, status.KeyDerive("failed to extract child chain code", err)
	}

	return PrivateKey{Algorithm: EcdsaSecp256k1, raw: childPriv.Serialize(), ChainCode: childChainCode}, nil
}

// extractChainCode recovers the 32-byte chain code from an ExtendedKey's
// base58check serialization (offset 13..45: 4 version + 1 depth +
// 4 parent-fingerprint + 4 child-number + 32 chain-code).
func extractChainCode(key *hdkeychain.ExtendedKey) ([]byte, error) {
	decoded, err := base58.Decode(key.String())
	if err != nil {
		return nil, err
	}
	if len(decoded) < 45 {
		return nil, status.KeyDerive("malformed extended key serialization", nil)
	}
	cc := make([]byte, 32)
	copy(cc, decoded[13:45])
	return cc, nil
}
